package couponControllers_test

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	couponControllers "github.com/harshilv17/Zivara/controllers/coupon"
	"github.com/harshilv17/Zivara/models"
	"github.com/harshilv17/Zivara/testutil"
)

func TestComputeDiscount(t *testing.T) {
	tests := []struct {
		name      string
		coupon    models.Coupon
		cartTotal float64
		want      float64
	}{
		{
			name:      "percentage without cap",
			coupon:    models.Coupon{DiscountType: models.DiscountPercentage, DiscountValue: 10},
			cartTotal: 1000,
			want:      100,
		},
		{
			name:      "percentage capped at max discount",
			coupon:    models.Coupon{DiscountType: models.DiscountPercentage, DiscountValue: 10, MaxDiscount: 50},
			cartTotal: 1000,
			want:      50,
		},
		{
			name:      "fixed returns value unmodified",
			coupon:    models.Coupon{DiscountType: models.DiscountFixed, DiscountValue: 75},
			cartTotal: 1000,
			want:      75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, couponControllers.ComputeDiscount(tt.coupon, tt.cartTotal))
		})
	}
}

func seedCoupon(t *testing.T, db *gorm.DB, coupon models.Coupon) models.Coupon {
	t.Helper()
	require.NoError(t, db.Create(&coupon).Error)
	return coupon
}

func TestValidateCoupon(t *testing.T) {
	db, r := testutil.NewServer(t)
	user := testutil.CreateUser(t, db, "coupon@example.com", models.RoleCustomer)
	token := testutil.Token(t, user)

	past := time.Now().Add(-time.Hour)
	seedCoupon(t, db, models.Coupon{Code: "SAVE10", DiscountType: models.DiscountPercentage, DiscountValue: 10, IsActive: true})
	seedCoupon(t, db, models.Coupon{Code: "INACTIVE", DiscountType: models.DiscountFixed, DiscountValue: 50, IsActive: false})
	seedCoupon(t, db, models.Coupon{Code: "EXPIRED", DiscountType: models.DiscountFixed, DiscountValue: 50, IsActive: true, ExpiresAt: &past})
	seedCoupon(t, db, models.Coupon{Code: "USEDUP", DiscountType: models.DiscountFixed, DiscountValue: 50, IsActive: true, UsageLimit: 2, UsedCount: 2})
	seedCoupon(t, db, models.Coupon{Code: "BIGSPEND", DiscountType: models.DiscountFixed, DiscountValue: 50, IsActive: true, MinPurchase: 5000})

	validate := func(code string, total float64) *struct {
		Code     int
		Discount float64
	} {
		w := testutil.Do(t, r, http.MethodPost, "/api/coupons/validate", map[string]interface{}{
			"code": code, "cart_total": total,
		}, token)
		var body struct {
			Discount float64 `json:"discount"`
		}
		testutil.Decode(t, w, &body)
		return &struct {
			Code     int
			Discount float64
		}{w.Code, body.Discount}
	}

	assert.Equal(t, http.StatusNotFound, validate("NOSUCH", 1000).Code)
	assert.Equal(t, http.StatusBadRequest, validate("INACTIVE", 1000).Code)
	assert.Equal(t, http.StatusBadRequest, validate("EXPIRED", 1000).Code)
	assert.Equal(t, http.StatusBadRequest, validate("USEDUP", 1000).Code)
	assert.Equal(t, http.StatusBadRequest, validate("BIGSPEND", 1000).Code)

	ok := validate("SAVE10", 1000)
	assert.Equal(t, http.StatusOK, ok.Code)
	assert.Equal(t, 100.0, ok.Discount)

	// codes match case-insensitively
	lower := validate("save10", 1000)
	assert.Equal(t, http.StatusOK, lower.Code)
}

func TestCouponCreatedInactiveStaysInactive(t *testing.T) {
	db, _ := testutil.NewServer(t)

	// IsActive must survive a Create unchanged; a column default would make
	// gorm skip the zero value and persist the coupon as active.
	coupon := seedCoupon(t, db, models.Coupon{Code: "DORMANT", DiscountType: models.DiscountFixed, DiscountValue: 50, IsActive: false})

	var saved models.Coupon
	require.NoError(t, db.First(&saved, coupon.ID).Error)
	assert.False(t, saved.IsActive)
}

func TestApplyCouponIncrementsUsage(t *testing.T) {
	db, r := testutil.NewServer(t)
	user := testutil.CreateUser(t, db, "coupon@example.com", models.RoleCustomer)
	token := testutil.Token(t, user)

	coupon := seedCoupon(t, db, models.Coupon{Code: "LIMITED", DiscountType: models.DiscountFixed, DiscountValue: 50, IsActive: true, UsageLimit: 2})

	for i := 0; i < 2; i++ {
		w := testutil.Do(t, r, http.MethodPost, "/api/coupons/apply", map[string]interface{}{"code": "LIMITED"}, token)
		require.Equal(t, http.StatusOK, w.Code)
	}

	// the guard stops the third application at the limit
	w := testutil.Do(t, r, http.MethodPost, "/api/coupons/apply", map[string]interface{}{"code": "LIMITED"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var saved models.Coupon
	require.NoError(t, db.First(&saved, coupon.ID).Error)
	assert.Equal(t, 2, saved.UsedCount)
}

func TestApplyUnknownCoupon(t *testing.T) {
	db, r := testutil.NewServer(t)
	user := testutil.CreateUser(t, db, "coupon@example.com", models.RoleCustomer)

	w := testutil.Do(t, r, http.MethodPost, "/api/coupons/apply", map[string]interface{}{"code": "NOSUCH"}, testutil.Token(t, user))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCouponAdminRequiresRole(t *testing.T) {
	db, r := testutil.NewServer(t)
	customer := testutil.CreateUser(t, db, "customer@example.com", models.RoleCustomer)
	admin := testutil.CreateUser(t, db, "admin@example.com", models.RoleAdmin)

	w := testutil.Do(t, r, http.MethodGet, "/api/coupons", nil, testutil.Token(t, customer))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = testutil.Do(t, r, http.MethodGet, "/api/coupons", nil, testutil.Token(t, admin))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateCouponNormalizesAndRejectsDuplicates(t *testing.T) {
	db, r := testutil.NewServer(t)
	admin := testutil.CreateUser(t, db, "admin@example.com", models.RoleAdmin)
	token := testutil.Token(t, admin)

	w := testutil.Do(t, r, http.MethodPost, "/api/coupons", map[string]interface{}{
		"code": "newyear", "discount_type": "FIXED", "discount_value": 100,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Coupon
	testutil.Decode(t, w, &created)
	assert.Equal(t, "NEWYEAR", created.Code)

	w = testutil.Do(t, r, http.MethodPost, "/api/coupons", map[string]interface{}{
		"code": "NEWYEAR", "discount_type": "FIXED", "discount_value": 100,
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestUpdateCouponCanDeactivate(t *testing.T) {
	db, r := testutil.NewServer(t)
	admin := testutil.CreateUser(t, db, "admin@example.com", models.RoleAdmin)
	coupon := seedCoupon(t, db, models.Coupon{Code: "TOGGLE", DiscountType: models.DiscountFixed, DiscountValue: 10, IsActive: true})

	w := testutil.Do(t, r, http.MethodPut, "/api/coupons/"+itoa(coupon.ID), map[string]interface{}{
		"is_active": false,
	}, testutil.Token(t, admin))
	require.Equal(t, http.StatusOK, w.Code)

	var saved models.Coupon
	require.NoError(t, db.First(&saved, coupon.ID).Error)
	assert.False(t, saved.IsActive)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
