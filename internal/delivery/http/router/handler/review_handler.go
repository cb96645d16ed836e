package handler

import (
	"log/slog"
	"net/http"

	"plaza/internal/delivery/http/response"
	"plaza/internal/domain/entity"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

type submitReviewBody struct {
	SubjectID       uuid.UUID      `json:"subject_id" validate:"required"`
	SubjectType     string         `json:"subject_type" validate:"required,oneof=listing provider"`
	Rating          int            `json:"rating" validate:"required"`
	Text            string         `json:"text"`
	IsMustVisit     bool           `json:"is_must_visit"`
	IsHiddenGem     bool           `json:"is_hidden_gem"`
	CriteriaRatings map[string]int `json:"criteria_ratings"`
}

// SubmitReview creates or edits the author's review of a subject and
// refreshes the subject's rating aggregate.
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	var body submitReviewBody
	if err := c.Bind(&body); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}

	review, err := h.uc.SubmitReview(c.Request().Context(), usecase.ReviewInput{
		AuthorID:        mustUserID(c),
		SubjectID:       body.SubjectID,
		SubjectType:     entity.ReviewSubjectType(body.SubjectType),
		Rating:          body.Rating,
		Text:            body.Text,
		IsMustVisit:     body.IsMustVisit,
		IsHiddenGem:     body.IsHiddenGem,
		CriteriaRatings: body.CriteriaRatings,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review submitted")
}

// GetReviews lists all reviews of a subject, newest first.
func (h *ReviewHandler) GetReviews(c echo.Context) error {
	subjectID, err := uuid.Parse(c.Param("subjectID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subject ID")
	}

	reviews, err := h.uc.GetReviews(c.Request().Context(), subjectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}

// GetOwnReview retrieves the authenticated user's review of a subject.
func (h *ReviewHandler) GetOwnReview(c echo.Context) error {
	subjectID, err := uuid.Parse(c.Param("subjectID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subject ID")
	}

	review, err := h.uc.GetOwnReview(c.Request().Context(), mustUserID(c), subjectID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "")
}
