package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnavshah/tipout-api-go/pkg/models"
)

// ValidateInput checks a preview payload for structural problems before it
// is run through the engine
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.ReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	if len(input.Shifts) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"valid": false,
			"error": "At least one shift is required",
		})
		return
	}

	// Check for duplicate shift IDs; duplicates would collapse in the
	// tip pool share map
	shiftIDs := make(map[string]bool)
	for _, s := range input.Shifts {
		if shiftIDs[s.ID] {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Duplicate shift ID: " + s.ID})
			return
		}
		shiftIDs[s.ID] = true

		if s.Hours < 0 {
			c.JSON(http.StatusOK, gin.H{"valid": false, "error": "Negative hours on shift: " + s.ID})
			return
		}
		for _, cfg := range s.Role.Configs {
			if cfg.PercentageRate < 0 || cfg.PercentageRate > 100 {
				c.JSON(http.StatusOK, gin.H{
					"valid": false,
					"error": "Percentage rate out of range on role " + s.Role.Name,
				})
				return
			}
		}
	}

	roleNames := make(map[string]bool)
	for _, s := range input.Shifts {
		roleNames[s.Role.Name] = true
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"stats": gin.H{
			"shift_count": len(input.Shifts),
			"role_count":  len(roleNames),
		},
	})
}
