package userControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/phamnguyendevv/fashion-api/models"
	"gorm.io/gorm"
)

type AddressInput struct {
	Name      string `json:"name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	City      string `json:"city" binding:"required"`
	Country   string `json:"country" binding:"required"`
	Address   string `json:"address" binding:"required"`
	Type      string `json:"type"`
	IsDefault bool   `json:"is_default"`
}

// GET /user/:user_id/addresses
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		if err := db.First(&models.User{}, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		var addresses []models.UserAddress
		if err := db.Where("user_id = ?", userID).Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch addresses"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Addresses retrieved successfully", "data": addresses})
	}
}

// POST /user/:user_id/addresses
func AddAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		if err := db.First(&models.User{}, "id = ?", userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		address := models.UserAddress{
			UserID:    userID,
			Name:      input.Name,
			Phone:     input.Phone,
			City:      input.City,
			Country:   input.Country,
			Address:   input.Address,
			Type:      input.Type,
			IsDefault: input.IsDefault,
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if input.IsDefault {
				if err := tx.Model(&models.UserAddress{}).
					Where("user_id = ?", userID).
					Update("is_default", false).Error; err != nil {
					return err
				}
			}
			return tx.Create(&address).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to save address"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Address added successfully", "data": address})
	}
}

// PUT /user/:user_id/addresses/:id
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid address ID"})
			return
		}

		var address models.UserAddress
		if err := db.Where("id = ? AND user_id = ?", id, userID).First(&address).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Address not found"})
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
			return
		}

		address.Name = input.Name
		address.Phone = input.Phone
		address.City = input.City
		address.Country = input.Country
		address.Address = input.Address
		address.Type = input.Type
		address.IsDefault = input.IsDefault

		err = db.Transaction(func(tx *gorm.DB) error {
			if input.IsDefault {
				if err := tx.Model(&models.UserAddress{}).
					Where("user_id = ? AND id <> ?", userID, address.ID).
					Update("is_default", false).Error; err != nil {
					return err
				}
			}
			return tx.Save(&address).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update address"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address updated successfully", "data": address})
	}
}

// DELETE /user/:user_id/addresses/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid address ID"})
			return
		}

		res := db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.UserAddress{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete address"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Address not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Address deleted successfully"})
	}
}
