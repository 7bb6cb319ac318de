package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/harshilv17/Zivara/models"
)

// SeedProducts resets the catalog to a small demo set. Admin-only; dependent
// rows go first to keep foreign keys happy.
func SeedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		seed := []models.Product{
			{Name: "SWING Matcha", Price: 2499, Image: "/images/sling.png", Category: "Sling", Description: "A perfect pastel green sling for your daily essentials.", InStock: true},
			{Name: "SWING Terra", Price: 2899, Image: "/images/tote.png", Category: "Tote", Description: "Earthy tan tote bag with ample space.", InStock: true},
			{Name: "SWING Rocher", Price: 2499, Image: "/images/sling.png", Category: "Sling", Description: "Classic brown sling.", InStock: true},
			{Name: "SWING Sienna", Price: 3299, Image: "/images/tote.png", Category: "Tote", Description: "Premium tote for work and travel.", InStock: true},
			{Name: "SWING Pearl", Price: 2799, Image: "/images/sling.png", Category: "Sling", Description: "Elegant white sling bag.", InStock: true},
			{Name: "CARRY All", Price: 3499, Image: "/images/tote.png", Category: "Tote", Description: "The everyday carry-all tote.", InStock: true},
			{Name: "MINI Pouch", Price: 1499, Image: "/images/sling.png", Category: "Wallet", Description: "Compact mini pouch wallet.", InStock: true},
			{Name: "EVENING Clutch", Price: 1999, Image: "/images/tote.png", Category: "Wallet", Description: "Stylish evening clutch.", InStock: true},
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			for _, m := range []interface{}{
				&models.CartItem{}, &models.WishlistItem{}, &models.Review{},
				&models.OrderItem{}, &models.Product{},
			} {
				if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
					return err
				}
			}
			return tx.Create(&seed).Error
		})
		if err != nil {
			log.Error().Err(err).Msg("products: seed failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Seeding failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Seeded successfully", "count": len(seed)})
	}
}
