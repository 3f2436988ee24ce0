package solution

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
	Schema(c *gin.Context)
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
	solutionGroup := routes.Group("/solution")

	{
		solutionGroup.POST("/create", ctrl.Create)
		solutionGroup.GET("", ctrl.Read)
		solutionGroup.GET("/list", ctrl.List)
		solutionGroup.GET("/schema", ctrl.Schema)
	}
}

// @Summary Cria uma nova solution
// @Tags Solution
// @Accept json
// @Produce json
// @Param request body CreateSolutionRequestDto true "Dados da solution"
// @Success 201 {object} SolutionResponseDto
// @Failure 400 {object} rest_err.RestErr
// @Failure 409 {object} rest_err.RestErr
// @Failure 500 {object} rest_err.RestErr
// @Router /api/solution/create [post]
func (ctrl *controllerImpl) Create(c *gin.Context) {
	trace := access_log.GetTraceCode(c)

	var req CreateSolutionRequestDto
	if err := c.ShouldBindJSON(&req); err != nil {
		restError := rest_err.NewBadRequestValidationError(trace, "Corpo JSON inválido ou mal formatado.", rest_err.CausesFromBinding(err))
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, "", false, req, restError)
		return
	}

	created, err := ctrl.service.Create(c.Request.Context(), model.Solution{
		Identifier:   req.Identifier,
		Name:         req.Name,
		ConfigSchema: req.ConfigSchema,
	})
	if err != nil {
		var restError *rest_err.RestErr
		switch {
		case errors.Is(err, ErrIdentifierDuplicated):
			restError = rest_err.NewConflictValidationError(trace, "O identificador fornecido já está em uso por outra solution.", nil)
		case errors.Is(err, ErrInvalidInput):
			restError = rest_err.NewBadRequestError(trace, ErrInvalidInput.Error())
		default:
			restError = rest_err.NewInternalServerError(trace, "Falha ao criar solution", nil)
		}
		c.JSON(restError.Code, restError)
		ctrl.logAudit(c, "", false, req, restError)
		return
	}

	resp := Presenter.Present(created)
	c.JSON(http.StatusCreated, resp)
	ctrl.logAudit(c, created.ID, true, req, resp)
}

// @Summary      Busca uma Solution
// @Tags         Solution
// @Produce      json
// @Param        id query string false "ID da solution."
// @Param        identifier query string false "Identificador da solution."
// @Success      200  {object}  SolutionResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Router       /api/solution [get]
func (ctrl *controllerImpl) Read(c *gin.Context) {
	found, ok := ctrl.find(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, Presenter.Present(found))
}

// @Summary      Schema de configuração de uma Solution
// @Description  Retorna o JSON Schema de configuração; "schema" é null quando não há propriedades definidas.
// @Tags         Solution
// @Produce      json
// @Param        id query string false "ID da solution."
// @Param        identifier query string false "Identificador da solution."
// @Success      200  {object}  SolutionSchemaResponseDto
// @Failure      400  {object}  rest_err.RestErr
// @Failure      404  {object}  rest_err.RestErr
// @Router       /api/solution/schema [get]
func (ctrl *controllerImpl) Schema(c *gin.Context) {
	found, ok := ctrl.find(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, SchemaPresenter.Present(found))
}

// find resolve a solution pela query (id ou identifier) e já responde em caso de erro.
func (ctrl *controllerImpl) find(c *gin.Context) (model.Solution, bool) {
	trace := access_log.GetTraceCode(c)

	var req ReadSolutionRequestDto
	if err := c.ShouldBindQuery(&req); err != nil {
		restError := rest_err.NewBadRequestError(trace, "Parâmetros de busca inválidos.")
		c.JSON(restError.Code, restError)
		return model.Solution{}, false
	}

	if req.ID == "" && req.Identifier == "" {
		restError := rest_err.NewBadRequestError(trace, "É necessário fornecer o 'id' OU o 'identifier' para a busca.")
		c.JSON(restError.Code, restError)
		return model.Solution{}, false
	}

	found, err := ctrl.service.Read(c.Request.Context(), model.Solution{
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
			restError = rest_err.NewInternalServerError(trace, "Falha ao buscar solution", nil)
		}
		c.JSON(restError.Code, restError)
		return model.Solution{}, false
	}
	return found, true
}

// @Summary      Lista Solutions
// @Tags         Solution
// @Produce      json
// @Param        page query int false "Página (>= 1)." default(1)
// @Param        size query int false "Itens por página (máximo 100)." default(10)
// @Success      200  {object}  SolutionsResponseDto
// @Router       /api/solution/list [get]
func (ctrl *controllerImpl) List(c *gin.Context) {
	trace := access_log.GetTraceCode(c)

	var req ListSolutionRequestDto
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

	solutions, err := ctrl.service.List(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		restError := rest_err.NewInternalServerError(trace, "Falha ao buscar solutions", nil)
		c.JSON(restError.Code, restError)
		return
	}

	c.JSON(http.StatusOK, presenter.List(Presenter, solutions, req.Page, req.PageSize))
}
