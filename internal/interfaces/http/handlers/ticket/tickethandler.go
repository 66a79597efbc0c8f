package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

const msgSuccess = "success"

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	updateStateUC  usecases.UpdateTicketStateExecutor
	addCommentUC   usecases.AddCommentExecutor
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	updateStateUC usecases.UpdateTicketStateExecutor,
	addCommentUC usecases.AddCommentExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		updateStateUC:  updateStateUC,
		addCommentUC:   addCommentUC,
		logger:         logger,
	}
}

// CreateTicket handles POST /ticket
//
//	@Summary	Create a ticket
//	@Tags		tickets
//	@Accept		json
//	@Produce	json
//	@Param		body	body		CreateTicketRequest	true	"Ticket"
//	@Success	201		{object}	utils.APIResponse{data=CreateTicketResponse}
//	@Failure	400		{object}	utils.ErrorBody
//	@Router		/ticket [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	submitter, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req CreateTicketRequest
	if !h.bind(c, &req) {
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(submitter))
	if err != nil {
		h.renderError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Message, CreateTicketResponse{ID: result.TicketID})
}

// GetTicket handles GET /ticket/:id
//
//	@Summary	Get a ticket with its comments
//	@Tags		tickets
//	@Produce	json
//	@Param		id	path		int	true	"Ticket ID"
//	@Success	200	{object}	utils.APIResponse{data=dto.TicketDetailDTO}
//	@Failure	404	{object}	utils.ErrorBody
//	@Router		/ticket/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{TicketID: ticketID})
	if err != nil {
		h.renderError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, msgSuccess, detail)
}

// UpdateTicketState handles PUT /ticket/:id
//
//	@Summary	Change the state of a ticket
//	@Tags		tickets
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Ticket ID"
//	@Param		body	body		UpdateTicketStateRequest	true	"New state"
//	@Success	200		{object}	utils.APIResponse
//	@Failure	400		{object}	utils.ErrorBody
//	@Failure	404		{object}	utils.ErrorBody
//	@Failure	409		{object}	utils.ErrorBody
//	@Router		/ticket/{id} [put]
func (h *TicketHandler) UpdateTicketState(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketStateRequest
	bindErr := h.decode(c, &req)

	result, err := h.updateStateUC.Execute(c.Request.Context(), usecases.UpdateTicketStateCommand{
		TicketID:   ticketID,
		State:      req.State,
		RequestErr: bindErr,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result.Message, nil)
}

// AddComment handles POST /ticket/:id/comment
//
//	@Summary	Comment on an unclosed ticket
//	@Tags		tickets
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Ticket ID"
//	@Param		body	body		AddCommentRequest	true	"Comment"
//	@Success	201		{object}	utils.APIResponse{data=AddCommentResponse}
//	@Failure	400		{object}	utils.ErrorBody
//	@Failure	404		{object}	utils.ErrorBody
//	@Failure	409		{object}	utils.ErrorBody
//	@Router		/ticket/{id}/comment [post]
func (h *TicketHandler) AddComment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	submitter, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req AddCommentRequest
	bindErr := h.decode(c, &req)

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID:       ticketID,
		Text:           req.Text,
		SubmitterEmail: submitter,
		RequestErr:     bindErr,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Message, AddCommentResponse{ID: result.CommentID})
}

func (h *TicketHandler) bind(c *gin.Context, req interface{}) bool {
	if err := h.decode(c, req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return false
	}
	return true
}

// decode binds the JSON body and returns the client facing error without
// rendering it, for routes where a missing ticket takes precedence.
func (h *TicketHandler) decode(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Warnw("invalid request body", "path", c.FullPath(), "error", err)
		return utils.FormatBindError(err)
	}
	return nil
}

func (h *TicketHandler) currentUser(c *gin.Context) (string, bool) {
	email, ok := middleware.UserEmail(c)
	if !ok {
		h.logger.Errorw("request reached handler without caller identity", "path", c.FullPath())
		utils.ErrorResponseWithError(c, errors.NewInternalError("caller identity missing"))
	}
	return email, ok
}

// renderError logs server side failures with their cause before rendering.
func (h *TicketHandler) renderError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr == nil || !appErr.Exposed() {
		h.logger.Errorw("ticket request failed", "path", c.FullPath(), "error", err)
		_ = c.Error(err)
	}
	utils.ErrorResponseWithError(c, err)
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("Invalid ticket ID")
	}
	return uint(id), nil
}
