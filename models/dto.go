package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	Name     string `json:"name" form:"name" binding:"required,min=2"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name     string `json:"name" form:"name"`
	Avatar   string `json:"avatar" form:"avatar"`
	Bio      string `json:"bio" form:"bio"`
	Location string `json:"location" form:"location"`
}

// AddProductRequest carries the admin product-entry form. Price arrives as
// the literal form string (e.g. "49.99") and is parsed before storage.
type AddProductRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description" binding:"required"`
	Price       string `json:"price" form:"price" binding:"required"`
	Category    string `json:"category" form:"category" binding:"required"`
	Image       string `json:"image" form:"image"`
	Badge       string `json:"badge" form:"badge"`
}

type SearchRequest struct {
	Query string `json:"query" form:"query"`
}

type CategoryRequest struct {
	Category string `json:"category" form:"category" binding:"required"`
}

type CartAddRequest struct {
	ProductID string `json:"product_id" form:"product_id" binding:"required"`
}

type CartAdjustRequest struct {
	Delta int `json:"delta" form:"delta" binding:"required"`
}

type ChatRequest struct {
	History []ChatMessage `json:"history" binding:"required"`
}

type ImageRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
