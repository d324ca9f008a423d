package handler

import (
	"context"
	"net/http"

	"panelapi/internal/middleware"
	"panelapi/internal/repository"
	"panelapi/internal/serial"
	"panelapi/internal/service"
	"panelapi/pkg/pagination"
	"panelapi/pkg/response"

	"github.com/gin-gonic/gin"
)

type PaymentRequestHandler struct {
	requestService service.PaymentRequestService
	serials        serial.Service
}

func NewPaymentRequestHandler(requestService service.PaymentRequestService, serials serial.Service) *PaymentRequestHandler {
	return &PaymentRequestHandler{requestService: requestService, serials: serials}
}

func (h *PaymentRequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	requests := router.Group("/api/requests")
	{
		requests.GET("", middleware.RequirePermission("requests.read"), h.ListRequests)
		requests.GET("/serial-preview", middleware.RequirePermission("requests.read"), h.PreviewSerial)
		requests.GET("/:id", middleware.RequirePermission("requests.read"), h.GetRequest)
		requests.POST("", middleware.RequirePermission("requests.write"), h.CreateRequest)
		requests.POST("/import", middleware.RequirePermission("requests.import"), h.ImportRequest)
		requests.PUT("/:id", middleware.RequirePermission("requests.write"), h.UpdateRequest)
		requests.PUT("/:id/approve", middleware.RequirePermission("requests.approve"), h.ApproveRequest)
		requests.PUT("/:id/reject", middleware.RequirePermission("requests.approve"), h.RejectRequest)
		requests.PUT("/:id/return", middleware.RequirePermission("requests.approve"), h.ReturnRequest)
		requests.DELETE("/:id", middleware.RequirePermission("requests.delete"), h.DeleteRequest)
	}
}

func actorID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// CreateRequest handles POST /api/requests
// @Summary      Create payment request
// @Description  Creates a payment request, issues its serial and records the initial workflow step
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.CreatePaymentRequestRequest  true  "Payment Request Payload"
// @Success      201      {object}  response.Response{data=service.PaymentRequestResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/requests [post]
func (h *PaymentRequestHandler) CreateRequest(c *gin.Context) {
	var req service.CreatePaymentRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	created, err := h.requestService.Create(c.Request.Context(), actorID(c), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, created))
}

// ListRequests handles GET /api/requests with scope/status/project filters
// @Summary      List payment requests
// @Description  Retrieves a paginated list of payment requests with resolved workflow badges
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        scope       query     string  false  "Budget scope filter"
// @Param        status      query     string  false  "Status filter (pending|approved|rejected)"
// @Param        project_id  query     string  false  "Project UUID filter"
// @Param        page        query     int     false  "Page number (default 1)"
// @Param        limit       query     int     false  "Items per page (default 20)"
// @Success      200         {object}  response.Response{data=response.ListData}
// @Failure      500         {object}  response.Response
// @Router       /api/requests [get]
func (h *PaymentRequestHandler) ListRequests(c *gin.Context) {
	params := pagination.Parse(c)

	filter := repository.RequestFilter{
		Scope:     c.Query("scope"),
		Status:    c.Query("status"),
		ProjectID: c.Query("project_id"),
		Page:      params.Page,
		Limit:     params.Limit,
	}

	requests, total, err := h.requestService.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch payment requests"))
		return
	}

	c.JSON(http.StatusOK, response.SuccessList(http.StatusOK, requests, total, params.Page, params.Limit))
}

// GetRequest handles GET /api/requests/:id
// @Summary      Get payment request
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Request ID"
// @Success      200  {object}  response.Response{data=service.PaymentRequestResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/requests/{id} [get]
func (h *PaymentRequestHandler) GetRequest(c *gin.Context) {
	request, err := h.requestService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, request))
}

// UpdateRequest handles PUT /api/requests/:id — pending requests only
func (h *PaymentRequestHandler) UpdateRequest(c *gin.Context) {
	var req service.UpdatePaymentRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	updated, err := h.requestService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, updated))
}

// DeleteRequest handles DELETE /api/requests/:id
func (h *PaymentRequestHandler) DeleteRequest(c *gin.Context) {
	if err := h.requestService.Delete(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Payment request deleted successfully"))
}

type actionFunc func(ctx context.Context, id, userID, note string) (service.PaymentRequestResponse, error)

func (h *PaymentRequestHandler) act(c *gin.Context, fn actionFunc) {
	var req service.ActionRequest
	// Note body is optional on workflow actions
	_ = c.ShouldBindJSON(&req)

	updated, err := fn(c.Request.Context(), c.Param("id"), actorID(c), req.Note)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, updated))
}

// ApproveRequest handles PUT /api/requests/:id/approve
// @Summary      Approve payment request
// @Description  Advances the request to the next workflow step; final approval marks it approved
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true   "Request ID"
// @Param        payload  body      service.ActionRequest  false  "Optional note"
// @Success      200      {object}  response.Response{data=service.PaymentRequestResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/requests/{id}/approve [put]
func (h *PaymentRequestHandler) ApproveRequest(c *gin.Context) {
	h.act(c, h.requestService.Approve)
}

// RejectRequest handles PUT /api/requests/:id/reject
func (h *PaymentRequestHandler) RejectRequest(c *gin.Context) {
	h.act(c, h.requestService.Reject)
}

// ReturnRequest handles PUT /api/requests/:id/return — sends the request back
// to the first step without closing it
func (h *PaymentRequestHandler) ReturnRequest(c *gin.Context) {
	h.act(c, h.requestService.Return)
}

// ImportRequest handles POST /api/requests/import for legacy records with
// aliased field names
func (h *PaymentRequestHandler) ImportRequest(c *gin.Context) {
	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	imported, err := h.requestService.Import(c.Request.Context(), actorID(c), raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, imported))
}

// PreviewSerial handles GET /api/requests/serial-preview — shows the next
// serial without consuming it
func (h *PaymentRequestHandler) PreviewSerial(c *gin.Context) {
	next, err := h.serials.Preview(c.Request.Context(), serial.KindPaymentRequest)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to preview serial"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]string{"serial": next}))
}
