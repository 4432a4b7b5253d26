package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"movies-backend/internal/shared/response"
	"movies-backend/pkg/container"
	"movies-backend/pkg/jwt"
)

type tokenRequest struct {
	UserID        string `json:"userId"`
	Email         string `json:"email"`
	Admin         bool   `json:"admin"`
	TrustedMember bool   `json:"trustedMember"`
}

// tokenHandler issues signed tokens for local development so the API
// can be exercised without a real identity provider. Never registered
// outside the development environment.
func tokenHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req tokenRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.BadRequest(ctx, "Invalid request body")
			return
		}

		if req.UserID == "" {
			req.UserID = uuid.NewString()
		}

		claims := jwt.Claims{
			UserID: req.UserID,
			Email:  req.Email,
		}
		if req.Admin {
			claims.Admin = "true"
		}
		if req.TrustedMember {
			claims.TrustedMember = "true"
		}

		token, err := c.JWTManager.Generate(claims)
		if err != nil {
			response.InternalServerError(ctx, "Failed to generate token")
			return
		}

		response.Success(ctx, http.StatusOK, gin.H{"token": token})
	}
}
