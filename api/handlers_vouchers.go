package api

import (
	"net/http"

	"rewardsadmin/db"
	"rewardsadmin/models"
	"rewardsadmin/uploads"
	"rewardsadmin/utils"

	"github.com/gin-gonic/gin"
)

// voucherMediaFields are the optional file fields of the voucher form.
var voucherMediaFields = []string{"logo1", "logo2", "productImage", "banarImage"}

// ListVouchersHandler returns every stored voucher in insertion order.
// @Summary      List Vouchers
// @Description  Returns the full voucher collection. A missing vouchers file is an empty collection.
// @Tags         Vouchers
// @Produce      json
// @Success      200  {object}  ListResponse[models.Voucher]
// @Failure      500  {object}  utils.APIFailure
// @Router       /api/vouchers [get]
func ListVouchersHandler(c *gin.Context, database *db.Database) {
	vouchers, err := readList[models.Voucher](database.Vouchers, vouchersListPolicy)
	if err != nil {
		utils.GinFailure(c, http.StatusInternalServerError, "Failed to fetch vouchers", err)
		return
	}
	c.JSON(http.StatusOK, ListResponse[models.Voucher]{
		Message: "Vouchers fetched successfully",
		Data:    vouchers,
	})
}

// CreateVoucherHandler stores a new voucher sent as a multipart form.
// @Summary      Create a Voucher
// @Description  Numeric fields (`discount`, `coins`, `price`) fall back to 0 when missing or malformed.
// @Description  `terms[i]` and `howToAvail[i]` are rebuilt by index, then blank entries are dropped.
// @Description  Each of `logo1`, `logo2`, `productImage`, `banarImage` may carry a file.
// @Tags         Vouchers
// @Accept       multipart/form-data
// @Produce      json
// @Param        brand         formData  string  false  "Brand reference"
// @Param        title         formData  string  false  "Title"
// @Param        description   formData  string  false  "Description"
// @Param        discount      formData  number  false  "Discount"
// @Param        coins         formData  integer false  "Coins"
// @Param        price         formData  number  false  "Price"
// @Param        websiteLink   formData  string  false  "Website link"
// @Param        validUpTo     formData  string  false  "Validity end"
// @Param        logo1         formData  file    false  "Logo 1"
// @Param        logo2         formData  file    false  "Logo 2"
// @Param        productImage  formData  file    false  "Product image"
// @Param        banarImage    formData  file    false  "Banner image"
// @Success      201  {object}  RecordResponse[models.Voucher]
// @Failure      500  {object}  utils.APIFailure
// @Router       /api/vouchers [post]
func CreateVoucherHandler(c *gin.Context, database *db.Database, sidecar *uploads.Sidecar) {
	const failure = "Failed to create voucher"

	form, err := c.MultipartForm()
	if err != nil {
		utils.GinFailure(c, http.StatusInternalServerError, failure, err)
		return
	}

	media := make(map[string]*string, len(voucherMediaFields))
	saved := make([]*string, 0, len(voucherMediaFields))
	for _, field := range voucherMediaFields {
		rel, err := sidecar.SaveIfPresent(c, field)
		if err != nil {
			sidecar.Discard(saved...)
			utils.GinFailure(c, http.StatusInternalServerError, failure, err)
			return
		}
		media[field] = rel
		saved = append(saved, rel)
	}

	voucher := models.Voucher{
		RecordHeader: newRecordHeader(),
		Brand:        c.PostForm("brand"),
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Discount:     parseFloatOrZero(c.PostForm("discount")),
		Coins:        parseIntOrZero(c.PostForm("coins")),
		Price:        parseFloatOrZero(c.PostForm("price")),
		WebsiteLink:  c.PostForm("websiteLink"),
		ValidUpTo:    c.PostForm("validUpTo"),
		Terms:        indexedFormArray(form.Value, "terms"),
		HowToAvail:   indexedFormArray(form.Value, "howToAvail"),
		Logo1:        media["logo1"],
		Logo2:        media["logo2"],
		ProductImage: media["productImage"],
		BanarImage:   media["banarImage"],
	}

	if err := database.Vouchers.Append(voucher); err != nil {
		sidecar.Discard(saved...)
		utils.GinFailure(c, http.StatusInternalServerError, failure, err)
		return
	}

	c.JSON(http.StatusCreated, RecordResponse[models.Voucher]{
		Message: "Voucher created successfully",
		Data:    voucher,
	})
}
