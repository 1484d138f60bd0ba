package controllers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"geotrip/config"
	"geotrip/constants"
	"geotrip/dto"
	"geotrip/models"
	"geotrip/response"
	"geotrip/services"
)

const accessTokenMinutes = 60 * 24

// Login authenticates a back-office operator and issues an access token.
func Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", request.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			response.Unauthorized(c)
			return
		}
		response.ServerError(c)
		return
	}

	if user.Status != constants.UserStatusActive {
		response.Forbidden(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		response.Unauthorized(c)
		return
	}

	token, err := services.GenerateToken(services.UserInfo{
		UserID: user.ID,
		Role:   user.Role,
	}, accessTokenMinutes)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken: token,
		User: dto.ActorProfile{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}
