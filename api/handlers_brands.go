package api

import (
	"net/http"

	"rewardsadmin/db"
	"rewardsadmin/models"
	"rewardsadmin/uploads"
	"rewardsadmin/utils"

	"github.com/gin-gonic/gin"
)

// --- List Brands ---

// ListBrandsHandler returns every stored brand in insertion order.
// @Summary      List Brands
// @Description  Returns the full brand collection. Filtering and pagination happen in the dashboard.
// @Description  A missing brands file is an empty collection; an unreadable one is a 500.
// @Tags         Brands
// @Produce      json
// @Success      200  {object}  ListResponse[models.Brand]
// @Failure      500  {object}  utils.APIFailure
// @Router       /api/brands [get]
func ListBrandsHandler(c *gin.Context, database *db.Database) {
	brands, err := readList[models.Brand](database.Brands, brandsListPolicy)
	if err != nil {
		utils.GinFailure(c, http.StatusInternalServerError, "Failed to fetch brands", err)
		return
	}
	c.JSON(http.StatusOK, ListResponse[models.Brand]{
		Message: "Brands fetched successfully",
		Data:    brands,
	})
}

// --- Create Brand ---

// CreateBrandHandler stores a new brand sent as a multipart form.
// @Summary      Create a Brand
// @Description  Accepts `name`, `description`, `website_url`, `business_category` and an optional `image` file.
// @Description  The image is written to the public uploads directory and its relative path stored on the brand.
// @Tags         Brands
// @Accept       multipart/form-data
// @Produce      json
// @Param        name               formData  string  false  "Brand name"
// @Param        description        formData  string  false  "Brand description"
// @Param        website_url        formData  string  false  "Brand website"
// @Param        business_category  formData  string  false  "Business category, e.g. RETAIL"
// @Param        image              formData  file    false  "Brand image"
// @Success      201  {object}  RecordResponse[models.Brand]
// @Failure      500  {object}  utils.APIFailure
// @Router       /api/brands [post]
func CreateBrandHandler(c *gin.Context, database *db.Database, sidecar *uploads.Sidecar) {
	const failure = "Failed to create brand"

	if _, err := c.MultipartForm(); err != nil {
		utils.GinFailure(c, http.StatusInternalServerError, failure, err)
		return
	}

	image, err := sidecar.SaveIfPresent(c, "image")
	if err != nil {
		utils.GinFailure(c, http.StatusInternalServerError, failure, err)
		return
	}

	brand := models.Brand{
		RecordHeader:     newRecordHeader(),
		Name:             c.PostForm("name"),
		Description:      c.PostForm("description"),
		WebsiteURL:       c.PostForm("website_url"),
		BusinessCategory: c.PostForm("business_category"),
		Image:            image,
	}

	if err := database.Brands.Append(brand); err != nil {
		sidecar.Discard(image)
		utils.GinFailure(c, http.StatusInternalServerError, failure, err)
		return
	}

	c.JSON(http.StatusCreated, RecordResponse[models.Brand]{
		Message: "Brand created successfully",
		Data:    brand,
	})
}
