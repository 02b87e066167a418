package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"rewardsadmin/db"
	"rewardsadmin/models"
	"rewardsadmin/utils"

	"github.com/gin-gonic/gin"
)

// CouponListResponse is the body of GET /api/coupons. Coupons are returned exactly as stored.
type CouponListResponse struct {
	Coupons []json.RawMessage `json:"coupons" swaggertype:"array,object"`
}

// UpdateCouponRequest renames the coupon at a list position.
type UpdateCouponRequest struct {
	Index   *int    `json:"index"`
	NewName *string `json:"newName"`
	Version *int    `json:"_v,omitempty"` // Optional optimistic check against the stored _v
}

// RenameCouponRequest renames the coupon with the id in the path.
type RenameCouponRequest struct {
	NewName *string `json:"newName"`
	Version *int    `json:"_v,omitempty"`
}

// CreateCouponRequest defines the body for creating a coupon.
type CreateCouponRequest struct {
	Name          string  `json:"name" binding:"required"`
	Code          string  `json:"code"`
	Brand         string  `json:"brand"`
	Discount      float64 `json:"discount"`
	CoinsToRedeem int     `json:"coins_to_redeem"`
	ValidUpTo     string  `json:"validUpTo"`
	Status        string  `json:"status"`
}

// UpdateCouponResponse is returned by successful renames.
type UpdateCouponResponse struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
}

// --- List Coupons ---

// ListCouponsHandler returns every stored coupon.
// @Summary      List Coupons
// @Description  Returns the full coupon collection. Read failures of any kind are masked:
// @Description  the endpoint answers 200 with an empty list so the coupons page keeps rendering.
// @Tags         Coupons
// @Produce      json
// @Success      200  {object}  CouponListResponse
// @Router       /api/coupons [get]
func ListCouponsHandler(c *gin.Context, database *db.Database) {
	coupons, err := readList[json.RawMessage](database.Coupons, couponsListPolicy)
	if err != nil {
		// Only reachable if the coupons policy stops masking.
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to fetch coupons: %v", err))
		return
	}
	c.JSON(http.StatusOK, CouponListResponse{Coupons: coupons})
}

// --- Create Coupon ---

// CreateCouponHandler appends a coupon sent as JSON.
// @Summary      Create a Coupon
// @Tags         Coupons
// @Accept       json
// @Produce      json
// @Param        coupon  body      CreateCouponRequest  true  "Coupon fields; name is required"
// @Success      201     {object}  RecordResponse[models.Coupon]
// @Failure      400     {object}  utils.APIError
// @Failure      500     {object}  utils.APIError
// @Router       /api/coupons [post]
func CreateCouponHandler(c *gin.Context, database *db.Database) {
	var req CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	coupon := models.Coupon{
		RecordHeader:  newRecordHeader(),
		Name:          req.Name,
		Code:          req.Code,
		Brand:         req.Brand,
		Discount:      req.Discount,
		CoinsToRedeem: req.CoinsToRedeem,
		ValidUpTo:     req.ValidUpTo,
		Status:        req.Status,
	}
	if err := database.Coupons.Append(coupon); err != nil {
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to create coupon: %v", err))
		return
	}

	c.JSON(http.StatusCreated, RecordResponse[models.Coupon]{
		Message: "Coupon created successfully",
		Data:    coupon,
	})
}

// --- Update Coupon (by index) ---

// UpdateCouponHandler renames the coupon at the given list position.
// @Summary      Rename a Coupon by Position
// @Description  The coupon is addressed by its position in the list, read and rewritten under one
// @Description  store lock. When `_v` is sent it must match the stored version.
// @Tags         Coupons
// @Accept       json
// @Produce      json
// @Param        update  body      UpdateCouponRequest  true  "Position and new display name"
// @Success      200     {object}  UpdateCouponResponse
// @Failure      400     {object}  utils.APIError "Invalid coupon index"
// @Failure      409     {object}  utils.APIError "Version conflict"
// @Failure      500     {object}  utils.APIError
// @Router       /api/coupons [put]
func UpdateCouponHandler(c *gin.Context, database *db.Database) {
	var req UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to update coupon: %v", err))
		return
	}
	if req.Index == nil {
		utils.GinBadRequest(c, "Invalid coupon index")
		return
	}
	if req.NewName == nil {
		utils.GinBadRequest(c, "newName is required")
		return
	}

	// Ids are not guaranteed unique, so the position is the only reliable address here.
	if _, err := database.Coupons.UpdateFieldAtIndex(*req.Index, models.CouponNameField, *req.NewName, req.Version); err != nil {
		writeCouponUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, UpdateCouponResponse{Success: true})
}

// --- Update Coupon (by id) ---

// RenameCouponHandler renames the coupon with the given id.
// @Summary      Rename a Coupon by ID
// @Tags         Coupons
// @Accept       json
// @Produce      json
// @Param        id      path      string               true  "Coupon ID"
// @Param        update  body      RenameCouponRequest  true  "New display name"
// @Success      200     {object}  UpdateCouponResponse
// @Failure      400     {object}  utils.APIError
// @Failure      404     {object}  utils.APIError
// @Failure      409     {object}  utils.APIError
// @Failure      500     {object}  utils.APIError
// @Router       /api/coupons/{id} [put]
func RenameCouponHandler(c *gin.Context, database *db.Database) {
	var req RenameCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.GinBadRequest(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if req.NewName == nil {
		utils.GinBadRequest(c, "newName is required")
		return
	}

	updated, err := database.Coupons.UpdateFieldByID(c.Param("id"), models.CouponNameField, *req.NewName, req.Version)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			utils.GinNotFound(c, "Coupon not found")
			return
		}
		writeCouponUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, UpdateCouponResponse{Success: true, Data: updated})
}

// writeCouponUpdateError maps store errors of a rename to the coupon error envelope.
func writeCouponUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, db.ErrIndexOutOfRange):
		utils.GinBadRequest(c, "Invalid coupon index")
	case errors.Is(err, db.ErrVersionConflict):
		utils.GinConflict(c, "Coupon was modified by someone else, reload and retry")
	default:
		utils.GinInternalServerError(c, fmt.Sprintf("Failed to update coupon: %v", err))
	}
}
