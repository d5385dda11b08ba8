package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleSigninRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"required,email"`
	FirebaseUID string `json:"firebaseUid" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /api/auth/signup
func (a *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.ConfirmPassword != "" && req.ConfirmPassword != req.Password {
		resp.BadRequest(c, "passwords do not match")
		return
	}

	user, err := a.Svc.Register(req.Name, req.Email, req.Password)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	resp.Created(c, gin.H{
		"message": "User registered successfully",
		"user":    gin.H{"id": user.ID, "name": user.Name, "email": user.Email},
	})
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	resp.OK(c, gin.H{
		"token": token,
		"user": gin.H{
			"id": user.ID, "name": user.Name, "email": user.Email, "role": user.Role,
		},
	})
}

// POST /api/auth/google-signin
// Exchanges a verified federated profile for an app token.
func (a *AuthController) GoogleSignin(c *gin.Context) {
	var req GoogleSigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.ExchangeFederated(req.Name, req.Email, req.FirebaseUID)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	resp.OK(c, gin.H{
		"token": token,
		"user": gin.H{
			"id": user.ID, "uid": user.ProviderUID,
			"name": user.Name, "email": user.Email, "role": user.Role,
		},
	})
}

// GET /api/auth/me
func (a *AuthController) Me(c *gin.Context) {
	identity := utils.CurrentIdentity(c)
	if identity == nil || identity.UserID == "" {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, err := strconv.ParseUint(identity.UserID, 10, 64)
	if err != nil {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	user, err := a.Svc.GetProfile(uint(id))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, gin.H{"user": gin.H{
		"id": user.ID, "name": user.Name, "email": user.Email, "role": user.Role,
	}})
}
