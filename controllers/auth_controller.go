package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-booking/middleware"
	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"
)

type registerPayload struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      models.User `json:"user"`
}

type AuthController struct {
	Users  *services.UserService
	Tokens *middleware.TokenIssuer
}

func NewAuthController(users *services.UserService, tokens *middleware.TokenIssuer) *AuthController {
	return &AuthController{Users: users, Tokens: tokens}
}

// POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var p registerPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "invalid payload: "+err.Error())
		return
	}

	u, err := ac.Users.Register(c.Request.Context(), services.RegisterInput{
		Username:  p.Username,
		Email:     p.Email,
		Password:  p.Password,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	ac.issue(c, http.StatusCreated, u)
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var p loginPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "invalid payload")
		return
	}

	u, err := ac.Users.Authenticate(c.Request.Context(), p.Username, p.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	ac.issue(c, http.StatusOK, u)
}

func (ac *AuthController) issue(c *gin.Context, status int, u models.User) {
	token, expires, err := ac.Tokens.GenerateToken(u)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, status, authResponse{Token: token, ExpiresAt: expires, User: u})
}
