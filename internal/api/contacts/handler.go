package contacts

import (
	"net/http"

	"remcua-backend/database"
	"remcua-backend/internal/domain/contacts"

	"github.com/gin-gonic/gin"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone" binding:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// POST /contacts (public, sanitized upstream)
func CreateContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact := contacts.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Status:  contacts.StatusNew,
	}
	if err := database.DB.Create(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit contact"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": contact.ID})
}

// GET /contacts (admin)
// ?status=new narrows to unhandled leads.
func ListContacts(c *gin.Context) {
	q := database.DB.Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		if !contacts.ValidStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status"})
			return
		}
		q = q.Where("status = ?", status)
	}

	var list []contacts.Contact
	if err := q.Find(&list).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contacts"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /contacts/:id (admin)
func GetContact(c *gin.Context) {
	var contact contacts.Contact
	if err := database.DB.First(&contact, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}
	c.JSON(http.StatusOK, contact)
}

// PUT /contacts/:id/status (admin)
// Status is the only field mutable after creation.
func UpdateContactStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !contacts.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status must be new, processing or completed"})
		return
	}

	var contact contacts.Contact
	if err := database.DB.First(&contact, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	if err := database.DB.Model(&contact).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// DELETE /contacts/:id (admin)
func DeleteContact(c *gin.Context) {
	res := database.DB.Delete(&contacts.Contact{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
}
