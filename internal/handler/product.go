package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"gorm.io/datatypes"

	"github.com/ZeeshanMalik1/switch2itech-backend/internal/model"
	"github.com/ZeeshanMalik1/switch2itech-backend/internal/service"
)

type ProductHandler struct {
	productService *service.ProductService
	userService    *service.UserService
}

func NewProductHandler(productService *service.ProductService, userService *service.UserService) *ProductHandler {
	return &ProductHandler{productService: productService, userService: userService}
}

type productView struct {
	model.Product
	Clients []model.UserBrief `json:"clients"`
}

// GET /products
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.productService.List()
	if err != nil {
		Fail(c, err)
		return
	}

	views, err := h.expandProducts(products)
	if err != nil {
		Fail(c, err)
		return
	}
	SuccessCount(c, len(views), views)
}

// GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	product, err := h.productService.Get(parseID(c.Param("id")))
	if err != nil {
		Fail(c, err)
		return
	}

	views, err := h.expandProducts([]model.Product{*product})
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, views[0])
}

// POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req struct {
		Name        string   `json:"name" binding:"required,max=256"`
		Description string   `json:"desc" binding:"required"`
		Category    string   `json:"category" binding:"required"`
		Clients     []uint   `json:"clients"`
		Videos      []string `json:"video"`
		Images      []string `json:"image"`
		Thumbnail   string   `json:"thumbnail"`
		TechStack   []string `json:"techStack"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.Create(&model.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Clients:     lo.Uniq(req.Clients),
		Videos:      req.Videos,
		Images:      req.Images,
		Thumbnail:   req.Thumbnail,
		TechStack:   req.TechStack,
	})
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, product)
}

// PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	var req struct {
		Name        *string   `json:"name"`
		Description *string   `json:"desc"`
		Category    *string   `json:"category"`
		Clients     *[]uint   `json:"clients"`
		Videos      *[]string `json:"video"`
		Images      *[]string `json:"image"`
		Thumbnail   *string   `json:"thumbnail"`
		TechStack   *[]string `json:"techStack"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Clients != nil {
		updates["clients"] = datatypes.NewJSONSlice(lo.Uniq(*req.Clients))
	}
	if req.Videos != nil {
		updates["videos"] = datatypes.NewJSONSlice(*req.Videos)
	}
	if req.Images != nil {
		updates["images"] = datatypes.NewJSONSlice(*req.Images)
	}
	if req.Thumbnail != nil {
		updates["thumbnail"] = *req.Thumbnail
	}
	if req.TechStack != nil {
		updates["tech_stack"] = datatypes.NewJSONSlice(*req.TechStack)
	}

	product, err := h.productService.Update(parseID(c.Param("id")), updates)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, product)
}

// DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	if err := h.productService.Delete(parseID(c.Param("id"))); err != nil {
		Fail(c, err)
		return
	}
	Message(c, "Product deleted successfully")
}

// POST /products/:id/faqs
func (h *ProductHandler) AddFAQ(c *gin.Context) {
	var req struct {
		Question string `json:"question" binding:"required"`
		Answer   string `json:"answer" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "question and answer are required")
		return
	}

	product, err := h.productService.AddFAQ(parseID(c.Param("id")), req.Question, req.Answer)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, product)
}

// PATCH /products/:id/faqs/:faqId
func (h *ProductHandler) UpdateFAQ(c *gin.Context) {
	var req struct {
		Question *string `json:"question"`
		Answer   *string `json:"answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	product, err := h.productService.UpdateFAQ(parseID(c.Param("id")), c.Param("faqId"), req.Question, req.Answer)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, product)
}

// DELETE /products/:id/faqs/:faqId
func (h *ProductHandler) DeleteFAQ(c *gin.Context) {
	product, err := h.productService.DeleteFAQ(parseID(c.Param("id")), c.Param("faqId"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, product)
}

func (h *ProductHandler) expandProducts(products []model.Product) ([]productView, error) {
	var ids []uint
	for i := range products {
		ids = append(ids, products[i].Clients...)
	}

	briefs, err := h.userService.BriefsFor(lo.Uniq(ids))
	if err != nil {
		return nil, err
	}

	views := make([]productView, 0, len(products))
	for i := range products {
		views = append(views, productView{
			Product: products[i],
			Clients: pickBriefs(briefs, products[i].Clients),
		})
	}
	return views, nil
}
