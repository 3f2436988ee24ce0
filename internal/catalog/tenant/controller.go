package tenant

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

// Controller interface define os métodos do controller de tenant
type Controller interface {
	Routes(routes gin.IRouter)
	Create(c *gin.Context)
	Read(c *gin.Context)
	List(c *gin.Context)
}

type controllerImpl struct {
	service Service
}

// NewController cria uma nova instância do controller
func NewController(service Service) Controller {
	return &controllerImpl{service: service}
}

func (ctrl *controllerImpl) logAudit(c *gin.Context, action, function, resourceID string, success bool, input, output interface{}) {
	var trace string
	if t := access_log.GetTraceCode(c); t != nil {
		trace = *t
	}

	audit_log.LogAsync(c.Request.Context(), audit_log.AuditLog{
		RayTraceCode: trace,
		Domain:       Object,
		Action:       action,
		Function:     function,
		ResourceID:   resourceID,
		Success:      success,
		InputData:    audit_log.SerializeData(input),
		OutputData:   audit_log.SerializeData(output),
	})
}

// Routes registra as rotas do tenant
func (ctrl *controllerImpl) Routes(routes gin.IRouter) {
	tenantGroup := routes.Group("/tenant")

	{
		tenantGroup.POST("/create", ctrl.Create)
		tenantGroup.GET("", ctrl.Read)
		tenantGroup.GET("/list", ctrl.List)
	}
}

// Create cria um novo tenant
// @Summary Cria um novo tenant
// @Tags Tenant
// @Accept json
// @Produce json
// @Param request body CreateTenantRequestDto true "Dados do tenant"
// @Success 201 {object} TenantResponseDto
// @Failure 400 {object} rest_err.RestErr
// @Failure 409 {object} rest_err.RestErr
// @Failure 500 {object} rest_err.RestErr
// @Router /api/tenant/create [post]
func (ctrl *controllerImpl) Create(c *gin.Context) {
	trace := access_log.GetTraceCode(c)

	var req CreateTenantRequestDto
	if err := c.ShouldBindJSON(&req); err != nil {
		restError := rest_err.NewBadRequestValidationError(trace, "Corpo JSON inválido ou mal formatado.", rest_err.CausesFromBinding(err))
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, "create", "Create", "", false, req, restError)
		return
	}

	created, err := ctrl.service.Create(c.Request.Context(), model.Tenant{
		Identifier: req.Identifier,
		Name:       req.Name,
	})
	if err != nil {
		var restError *rest_err.RestErr
		switch {
		case errors.Is(err, ErrIdentifierDuplicated):
			restError = rest_err.NewConflictValidationError(trace, "O identificador fornecido já está em uso por outro tenant.", nil)
		case errors.Is(err, ErrInvalidInput):
			restError = rest_err.NewBadRequestError(trace, ErrInvalidInput.Error())
		default:
			restError = rest_err.NewInternalServerError(trace, "Falha ao criar tenant", nil)
		}
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, "create", "Create", "", false, req, restError)
		return
	}

	resp := Presenter.Present(created)
	c.JSON(http.StatusCreated, resp)
	ctrl.logAudit(c, "create", "Create", created.ID, true, req, resp)
}

// @Summary      Busca um Tenant
// @Description  Busca um tenant pelo id ou pelo identifier. Pelo menos um dos dois campos deve ser fornecido.
// @Tags         Tenant
// @Produce      json
// @Param        id query string false "ID do tenant. (Ex: ten_8871abf3ed114770b986e8d98d022d4f)"
// @Param        identifier query string false "Identificador do tenant. (Ex: acme)"
// @Success      200  {object}  TenantResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/tenant [get]
func (ctrl *controllerImpl) Read(c *gin.Context) {
	trace := access_log.GetTraceCode(c)

	var req ReadTenantRequestDto
	if err := c.ShouldBindQuery(&req); err != nil {
		restError := rest_err.NewBadRequestError(trace, "Parâmetros de busca inválidos.")
		c.JSON(restError.Code, restError)
		return
	}

	if req.ID == "" && req.Identifier == "" {
		restError := rest_err.NewBadRequestError(trace, "É necessário fornecer o 'id' OU o 'identifier' para a busca.")
		c.JSON(restError.Code, restError)
		return
	}

	found, err := ctrl.service.Read(c.Request.Context(), model.Tenant{
		ID:         req.ID,
		Identifier: req.Identifier,
	})
	if err != nil {
		var restError *rest_err.RestErr
		switch {
		case errors.Is(err, ErrNotFound):
			restError = rest_err.NewNotFoundError(trace, ErrNotFound.Error())
		case errors.Is(err, ErrInvalidInput):
			restError = rest_err.NewBadRequestError(trace, ErrInvalidInput.Error())
		default:
			restError = rest_err.NewInternalServerError(trace, "Falha ao buscar tenant", nil)
		}
		c.JSON(restError.Code, restError)
		return
	}

	c.JSON(http.StatusOK, Presenter.Present(found))
}

// @Summary      Lista Tenants
// @Description  Retorna uma lista paginada de tenants.
// @Tags         Tenant
// @Produce      json
// @Param        page query int false "Página (>= 1)." default(1)
// @Param        size query int false "Itens por página (máximo 100)." default(10)
// @Success      200  {object}  TenantsResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      500  {object}  rest_err.RestErr
// @Router       /api/tenant/list [get]
func (ctrl *controllerImpl) List(c *gin.Context) {
	trace := access_log.GetTraceCode(c)

	var req ListTenantRequestDto
	if err := c.ShouldBindQuery(&req); err != nil {
		restError := rest_err.NewBadRequestError(trace, "Parâmetros de busca inválidos. Verifique 'page' e 'size'.")
		c.JSON(restError.Code, restError)
		return
	}

	if req.PageSize > maxPageSize {
		restError := rest_err.NewBadRequestError(trace, "É permitido um máximo de 100 listagens por página.")
		c.JSON(restError.Code, restError)
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	lTenants, err := ctrl.service.List(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		restError := rest_err.NewInternalServerError(trace, "Falha ao buscar tenants", nil)
		c.JSON(restError.Code, restError)
		return
	}

	c.JSON(http.StatusOK, presenter.List(Presenter, lTenants, req.Page, req.PageSize))
}
