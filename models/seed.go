package models

// DefaultCatalog returns a copy of the bundled catalog used whenever the
// remote store is unreachable or empty. Callers may mutate the returned
// slice freely.
func DefaultCatalog() []Product {
	out := make([]Product, len(defaultCatalog))
	copy(out, defaultCatalog)
	return out
}

var defaultCatalog = []Product{
	// Electronics
	{ID: "e1", Name: "Fortumas X-Phone Pro", Description: "The ultimate smartphone experience with a titanium frame, 48MP camera, and all-day battery life.", Price: 999.00, Category: "Electronics", Rating: 4.9, ReviewsCount: 15420, Image: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?auto=format&fit=crop&q=80&w=800", Badge: "Premium"},
	{ID: "e2", Name: "UltraWide Curved Gaming Monitor", Description: "34-inch 144Hz curved display with vibrant colors and ultra-fast response time.", Price: 449.99, Category: "Electronics", Rating: 4.8, ReviewsCount: 3200, Image: "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?auto=format&fit=crop&q=80&w=800", Badge: "Top Rated"},
	{ID: "e3", Name: "Noise Cancelling Earbuds Gen 4", Description: "Compact wireless earbuds with industry-leading active noise cancellation.", Price: 199.00, Category: "Electronics", Rating: 4.6, ReviewsCount: 8200, Image: "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?auto=format&fit=crop&q=80&w=800"},
	{ID: "e4", Name: "Fortumas Book Air M3", Description: "The world's most popular laptop is now even better with the M3 chip and liquid retina display.", Price: 1299.00, Category: "Electronics", Rating: 4.9, ReviewsCount: 2150, Image: "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&q=80&w=800"},
	{ID: "e5", Name: "Pro Vlogger Camera Kit", Description: "Mirrorless 4K camera with flip screen, external mic, and tripod for professional content creation.", Price: 849.00, Category: "Electronics", Rating: 4.7, ReviewsCount: 1120, Image: "https://images.unsplash.com/photo-1516035069371-29a1b244cc32?auto=format&fit=crop&q=80&w=800"},
	{ID: "e6", Name: "SkyPhantom Drone 4K", Description: "Advanced folding drone with GPS, obstacle avoidance, and 30-minute flight time.", Price: 599.99, Category: "Electronics", Rating: 4.8, ReviewsCount: 650, Image: "https://images.unsplash.com/photo-1473968512447-ac4753a64607?auto=format&fit=crop&q=80&w=800"},

	// Clothing
	{ID: "c1", Name: "Urban Explorer Waterproof Parka", Description: "Stylish, windproof, and waterproof parka designed for extreme weather and city life.", Price: 185.00, Category: "Clothing", Rating: 4.7, ReviewsCount: 890, Image: "https://images.unsplash.com/photo-1591047139829-d91aecb6caea?auto=format&fit=crop&q=80&w=800", Badge: "Bestseller"},
	{ID: "c2", Name: "Classic Leather Chelsea Boots", Description: "Handcrafted genuine leather boots with elastic side panels and durable rubber sole.", Price: 120.00, Category: "Clothing", Rating: 4.5, ReviewsCount: 1205, Image: "https://images.unsplash.com/photo-1638247025967-b4e38f787b76?auto=format&fit=crop&q=80&w=800"},
	{ID: "c3", Name: "Minimalist Cotton T-Shirt Set", Description: "Pack of 3 premium organic cotton shirts in neutral colors.", Price: 45.00, Category: "Clothing", Rating: 4.4, ReviewsCount: 430, Image: "https://images.unsplash.com/photo-1521572267360-ee0c2909d518?auto=format&fit=crop&q=80&w=800"},
	{ID: "c4", Name: "Luxury Silk Evening Dress", Description: "Elegance redefined with pure mulberry silk and a modern silhouette.", Price: 350.00, Category: "Clothing", Rating: 4.8, ReviewsCount: 95, Image: "https://images.unsplash.com/photo-1595777457583-95e059d581b8?auto=format&fit=crop&q=80&w=800"},
	{ID: "c5", Name: "Performance Tech Joggers", Description: "Four-way stretch joggers with hidden zip pockets, perfect for travel or light workouts.", Price: 78.00, Category: "Clothing", Rating: 4.6, ReviewsCount: 1540, Image: "https://images.unsplash.com/photo-1515886657613-9f3515b0c78f?auto=format&fit=crop&q=80&w=800"},
	{ID: "c6", Name: "Arctic Wool Turtleneck", Description: "100% fine merino wool sweater that balances warmth with breathability.", Price: 110.00, Category: "Clothing", Rating: 4.7, ReviewsCount: 88, Image: "https://images.unsplash.com/photo-1576566588028-4147f3842f27?auto=format&fit=crop&q=80&w=800"},

	// Home & Kitchen
	{ID: "h1", Name: "Precision Espresso Machine", Description: "Barista-quality coffee at home with integrated grinder and steam wand.", Price: 599.00, Category: "Home & Kitchen", Rating: 4.9, ReviewsCount: 5430, Image: "https://images.unsplash.com/photo-1510591509098-f4fdc6d0ff04?auto=format&fit=crop&q=80&w=800"},
	{ID: "h2", Name: "Smart Robotic Vacuum V8", Description: "Hands-free cleaning with AI obstacle avoidance and powerful suction.", Price: 299.00, Category: "Home & Kitchen", Rating: 4.5, ReviewsCount: 2840, Image: "https://images.unsplash.com/photo-1518133910546-b6c2fb7d79e3?auto=format&fit=crop&q=80&w=800"},
	{ID: "h3", Name: "Cast Iron Dutch Oven 6qt", Description: "Premium enameled cast iron for perfect heat retention and distribution.", Price: 145.00, Category: "Home & Kitchen", Rating: 4.9, ReviewsCount: 11200, Image: "https://images.unsplash.com/photo-1591189863430-ab87e120f312?auto=format&fit=crop&q=80&w=800"},
	{ID: "h4", Name: "PureFlow Air Purifier", Description: "HEPA 13 filter captures 99.97% of airborne particles for cleaner breathing.", Price: 199.00, Category: "Home & Kitchen", Rating: 4.7, ReviewsCount: 940, Image: "https://images.unsplash.com/photo-1585338107529-13afc5f02586?auto=format&fit=crop&q=80&w=800"},
	{ID: "h5", Name: "Professional Chef Knife Set", Description: "German high-carbon steel knives with ergonomic handles and oak wood block.", Price: 249.00, Category: "Home & Kitchen", Rating: 4.9, ReviewsCount: 320, Image: "https://images.unsplash.com/photo-1593618998160-e34014e67546?auto=format&fit=crop&q=80&w=800"},
	{ID: "h6", Name: "Smart Multi-Cooker XL", Description: "10-in-1 cooker that pressure cooks, slow cooks, sautes, and even air fries.", Price: 169.00, Category: "Home & Kitchen", Rating: 4.8, ReviewsCount: 4500, Image: "https://images.unsplash.com/photo-1584269600464-37b1b58a9fe7?auto=format&fit=crop&q=80&w=800"},

	// Books
	{ID: "b1", Name: "Deep Learning with Python", Description: "Comprehensive guide to building neural networks and AI systems.", Price: 38.50, Category: "Books", Rating: 5.0, ReviewsCount: 120, Image: "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?auto=format&fit=crop&q=80&w=800"},
	{ID: "b2", Name: "The Art of Minimalist Living", Description: "Learn how to simplify your space and your life for maximum peace.", Price: 24.99, Category: "Books", Rating: 4.7, ReviewsCount: 450, Image: "https://images.unsplash.com/photo-1544947950-fa07a98d237f?auto=format&fit=crop&q=80&w=800"},
	{ID: "b3", Name: "Mastering UI/UX Design", Description: "A visual guide to creating intuitive and beautiful digital experiences.", Price: 42.00, Category: "Books", Rating: 4.9, ReviewsCount: 85, Image: "https://images.unsplash.com/photo-1586717791821-3f44a563eb4c?auto=format&fit=crop&q=80&w=800"},
	{ID: "b4", Name: "The Psychology of Money", Description: "Timeless lessons on wealth, greed, and happiness.", Price: 18.00, Category: "Books", Rating: 4.8, ReviewsCount: 22400, Image: "https://images.unsplash.com/photo-1553729459-efe14ef6055d?auto=format&fit=crop&q=80&w=800"},
	{ID: "b5", Name: "Modern Architecture Trends", Description: "A deep dive into sustainable building practices and futuristic design.", Price: 55.00, Category: "Books", Rating: 4.6, ReviewsCount: 42, Image: "https://images.unsplash.com/photo-1511105612320-2e62a04dd044?auto=format&fit=crop&q=80&w=800"},
	{ID: "b6", Name: "Creative Coding Handbook", Description: "Learn how to generate art and visuals using JavaScript and P5.js.", Price: 34.00, Category: "Books", Rating: 4.9, ReviewsCount: 110, Image: "https://images.unsplash.com/photo-1516116216624-53e697fedbea?auto=format&fit=crop&q=80&w=800"},

	// Sports
	{ID: "s1", Name: "Elite Carbon Road Bike", Description: "Ultralight aerodynamic frame designed for speed and endurance.", Price: 2499.00, Category: "Sports", Rating: 4.9, ReviewsCount: 320, Image: "https://images.unsplash.com/photo-1485965120184-e220f721d03e?auto=format&fit=crop&q=80&w=800"},
	{ID: "s2", Name: "Pro Series Dumbbell Set", Description: "Adjustable weight plates from 5lbs to 52lbs with a space-saving design.", Price: 320.00, Category: "Sports", Rating: 4.6, ReviewsCount: 1850, Image: "https://images.unsplash.com/photo-1584735935682-2f2b69dff9d2?auto=format&fit=crop&q=80&w=800"},
	{ID: "s3", Name: "ZenGrip Pro Yoga Mat", Description: "Extra thick, non-slip cork mat for perfect balance and comfort.", Price: 85.00, Category: "Sports", Rating: 4.8, ReviewsCount: 2100, Image: "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?auto=format&fit=crop&q=80&w=800"},
	{ID: "s4", Name: "Smart Muscle Recovery Gun", Description: "Percussive therapy device with 5 speeds and 4 specialized attachments.", Price: 129.00, Category: "Sports", Rating: 4.7, ReviewsCount: 3420, Image: "https://images.unsplash.com/photo-1599447421416-3414500d18a5?auto=format&fit=crop&q=80&w=800"},
	{ID: "s5", Name: "Carbon Fiber Tennis Racket", Description: "Professional grade racket offering superior power and vibration dampening.", Price: 189.00, Category: "Sports", Rating: 4.8, ReviewsCount: 120, Image: "https://images.unsplash.com/photo-1622279457486-62dcc4a4bd13?auto=format&fit=crop&q=80&w=800"},
	{ID: "s6", Name: "Pro Weight Bench 3000", Description: "Heavy-duty adjustable bench with incline and decline settings for full body workouts.", Price: 210.00, Category: "Sports", Rating: 4.6, ReviewsCount: 540, Image: "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?auto=format&fit=crop&q=80&w=800"},

	// Beauty
	{ID: "bt1", Name: "Revive Night Facial Oil", Description: "Organic botanical extracts to rejuvenate and hydrate your skin overnight.", Price: 65.00, Category: "Beauty", Rating: 4.8, ReviewsCount: 740, Image: "https://images.unsplash.com/photo-1608248597279-f99d160bfcbc?auto=format&fit=crop&q=80&w=800"},
	{ID: "bt2", Name: "Hyaluronic Acid Serum", Description: "Ultra-pure hydrating formula that plumps skin and reduces fine lines.", Price: 34.00, Category: "Beauty", Rating: 4.9, ReviewsCount: 3100, Image: "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?auto=format&fit=crop&q=80&w=800"},
	{ID: "bt3", Name: "Deep Clean Charcoal Mask", Description: "Detoxifying clay mask that draws out impurities and refines pores.", Price: 28.00, Category: "Beauty", Rating: 4.7, ReviewsCount: 1800, Image: "https://images.unsplash.com/photo-1596755389378-c31d21fd1273?auto=format&fit=crop&q=80&w=800"},
	{ID: "bt4", Name: "Vitamin C Glow Essence", Description: "Brightening facial mist that provides an instant refresh and antioxidant protection.", Price: 39.00, Category: "Beauty", Rating: 4.6, ReviewsCount: 650, Image: "https://images.unsplash.com/photo-1601049541289-9b1b7bbbfe19?auto=format&fit=crop&q=80&w=800"},
	{ID: "bt5", Name: "Luxe Beard Grooming Oil", Description: "Cedarwood and sandalwood infused oil for a soft, healthy, and fragrant beard.", Price: 22.00, Category: "Beauty", Rating: 4.8, ReviewsCount: 420, Image: "https://images.unsplash.com/photo-1554151228-14d9def656e4?auto=format&fit=crop&q=80&w=800"},
	{ID: "bt6", Name: "Shield Sunstick SPF 50", Description: "Transparent, non-greasy sunscreen stick for easy reapplying on the go.", Price: 26.00, Category: "Beauty", Rating: 4.9, ReviewsCount: 1200, Image: "https://images.unsplash.com/photo-1556228720-195a672e8a03?auto=format&fit=crop&q=80&w=800"},
}
