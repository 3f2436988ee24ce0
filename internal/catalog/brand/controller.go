package brand

import (
	"errors"
	"net/http"

	"subspace-catalog/internal/catalog/model"
	"subspace-catalog/internal/pkg/log/access_log"
	"subspace-catalog/internal/pkg/log/audit_log"
	"subspace-catalog/internal/pkg/presenter"
	"subspace-catalog/internal/pkg/rest_err"

	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

type Controller interface {
	Routes(routes gin.IRouter)
	Create(c *gin.Context)
	Read(c *gin.Context)
	List(c *gin.Context)
}

type controllerImpl struct {
	service Service
}

func NewController(service Service) Controller {
	return &controllerImpl{service: service}
}

func (ctrl *controllerImpl) logAudit(c *gin.Context, resourceID string, success bool, input, output interface{}) {
	var trace string
	if t := access_log.GetTraceCode(c); t != nil {
		trace = *t
	}

	audit_log.LogAsync(c.Request.Context(), audit_log.AuditLog{
		RayTraceCode: trace,
		Domain:       Object,
		Action:       "create",
		Function:     "Create",
		ResourceID:   resourceID,
		Success:      success,
		InputData:    audit_log.SerializeData(input),
		OutputData:   audit_log.SerializeData(output),
	})
}

func (ctrl *controllerImpl) Routes(routes gin.IRouter) {
	brandGroup := routes.Group("/brand")

	{
		brandGroup.POST("/create", ctrl.Create)
		brandGroup.GET("", ctrl.Read)
		brandGroup.GET("/list", ctrl.List)
	}
}

// @Summary Cria uma nova brand
// @Tags Brand
// @Accept json
// @Produce json
// @Param request body CreateBrandRequestDto true "Dados da brand"
// @Success 201 {object} BrandResponseDto
// @Failure 400 {object} rest_err.RestErr
// @Failure 500 {object} rest_err.RestErr
// @Router /api/brand/create [post]
func (ctrl *controllerImpl) Create(c *gin.Context) {
	trace := access_log.GetTraceCode(c)

	var req CreateBrandRequestDto
	if err := c.ShouldBindJSON(&req); err != nil {
		restError := rest_err.NewBadRequestValidationError(trace, "Corpo JSON inválido ou mal formatado.", rest_err.CausesFromBinding(err))
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, "", false, req, restError)
		return
	}

	created, err := ctrl.service.Create(c.Request.Context(), model.Brand{Name: req.Name, Image: req.Image})
	if err != nil {
		restError := rest_err.NewInternalServerError(trace, "Falha ao criar brand", nil)
		if errors.Is(err, ErrInvalidInput) {
			restError = rest_err.NewBadRequestError(trace, ErrInvalidInput.Error())
		}
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, "", false, req, restError)
		return
	}

	resp := Presenter.Present(created)
	c.JSON(http.StatusCreated, resp)
	ctrl.logAudit(c, created.ID, true, req, resp)
}

// @Summary      Busca uma Brand
// @Tags         Brand
// @Produce      json
// @Param        id query string true "ID da brand. (Ex: brd_8871abf3ed114770b986e8d98d022d4f)"
// @Success      200  {object}  BrandResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Router       /api/brand [get]
func (ctrl *controllerImpl) Read(c *gin.Context) {
	trace := access_log.GetTraceCode(c)

	var req ReadBrandRequestDto
	if err := c.ShouldBindQuery(&req); err != nil {
		restError := rest_err.NewBadRequestError(trace, "É necessário fornecer o 'id' para a busca.")
		c.JSON(restError.Code, restError)
		return
	}

	found, err := ctrl.service.Read(c.Request.Context(), req.ID)
	if err != nil {
		var restError *rest_err.RestErr
		switch {
		case errors.Is(err, ErrNotFound):
			restError = rest_err.NewNotFoundError(trace, ErrNotFound.Error())
		case errors.Is(err, ErrInvalidInput):
			restError = rest_err.NewBadRequestError(trace, ErrInvalidInput.Error())
		default:
			restError = rest_err.NewInternalServerError(trace, "Falha ao buscar brand", nil)
		}
		c.JSON(restError.Code, restError)
		return
	}

	c.JSON(http.StatusOK, Presenter.Present(found))
}

// @Summary      Lista Brands
// @Tags         Brand
// @Produce      json
// @Param        page query int false "Página (>= 1)." default(1)
// @Param        size query int false "Itens por página (máximo 100)." default(10)
// @Success      200  {object}  BrandsResponseDto
// @Router       /api/brand/list [get]
func (ctrl *controllerImpl) List(c *gin.Context) {
	trace := access_log.GetTraceCode(c)

	var req ListBrandRequestDto
	if err := c.ShouldBindQuery(&req); err != nil || req.PageSize > maxPageSize {
		restError := rest_err.NewBadRequestError(trace, "Parâmetros de paginação inválidos (máximo de 100 por página).")
		c.JSON(restError.Code, restError)
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	brands, err := ctrl.service.List(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		restError := rest_err.NewInternalServerError(trace, "Falha ao buscar brands", nil)
		c.JSON(restError.Code, restError)
		return
	}

	c.JSON(http.StatusOK, presenter.List(Presenter, brands, req.Page, req.PageSize))
}
