package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

// Submission states. "new" belongs to the client (nothing submitted yet);
// the server only ever answers with one of the other three.
const (
	SubmissionStatusNew        = "new"
	SubmissionStatusValidation = "validation"
	SubmissionStatusError      = "error"
	SubmissionStatusSuccess    = "success"
)

// Submission is the uniform envelope every create/update endpoint returns,
// so the form layer can redisplay validation state without a reload.
type Submission struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
}

// RenderValidationErr echoes the rejected input back alongside the
// per-field error map so the form can redisplay what the user typed.
func RenderValidationErr(ctx *gin.Context, err error, echo interface{}) {
	ctx.JSON(http.StatusUnprocessableEntity, Submission{
		Status: SubmissionStatusValidation,
		Errors: fieldErrors(err),
		Data:   echo,
	})
}

// RenderSubmissionErr answers a failed persistence write: generic message,
// no field detail. The cause is logged server-side only.
func RenderSubmissionErr(ctx *gin.Context, err error) {
	zap.L().Error("submission failed", zap.Error(err))

	ctx.JSON(http.StatusInternalServerError, Submission{
		Status:  SubmissionStatusError,
		Message: "something went wrong, please try again",
	})
}

func RenderSubmissionSuccess(ctx *gin.Context, statusCode int, message string, data interface{}) {
	ctx.JSON(statusCode, Submission{
		Status:  SubmissionStatusSuccess,
		Message: message,
		Data:    data,
	})
}

// fieldErrors flattens an ozzo error into field -> message. Anything that
// is not field-keyed lands under "_form".
func fieldErrors(err error) map[string]string {
	errs := map[string]string{}

	if verrs, ok := err.(validation.Errors); ok {
		for field, ferr := range verrs {
			errs[field] = ferr.Error()
		}
		return errs
	}

	errs["_form"] = err.Error()

	return errs
}
