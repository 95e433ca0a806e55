package helper

import (
	"net/http"
	"strings"
	"unicode"

	"picboard/models"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
)

const (
	textError = `error`
	textOk    = `ok`

	codeSuccess           = 200
	codeBadRequestError   = 400
	codeUnauthorizedError = 401
	codeForbiddenError    = 403
	codeNotFound          = 404
	codeInternalError     = 500
)

// ResponseHelper ...
type ResponseHelper struct {
	C        *gin.Context
	Status   string
	Message  string
	Data     interface{}
	Code     int
	CodeType string
}

// HTTPHelper ...
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

// GetStatusCode maps a service error onto the HTTP status to answer with.
func (u *HTTPHelper) GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch err.(type) {
	case models.ErrorNotFound:
		return http.StatusNotFound
	case models.ErrorBadRequest:
		return http.StatusBadRequest
	case models.ErrorForbidden:
		return http.StatusForbidden
	case models.ErrorUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// SetResponse ...
// Set response data.
func (u *HTTPHelper) SetResponse(c *gin.Context, status string, message string, data interface{}, code int, codeType string) ResponseHelper {
	return ResponseHelper{c, status, message, data, code, codeType}
}

// SendError ...
// Send error response to consumers.
func (u *HTTPHelper) SendError(c *gin.Context, message string, data interface{}, code int, codeType string) error {
	res := u.SetResponse(c, textError, message, data, code, codeType)
	return u.SendResponse(res)
}

// SendServiceError answers with the status matching the service error
// taxonomy; storage errors fall through as internal errors with a generic
// message so they never leak their contents to the client.
func (u *HTTPHelper) SendServiceError(c *gin.Context, err error) error {
	status := u.GetStatusCode(err)
	switch status {
	case http.StatusNotFound:
		return u.SendError(c, err.Error(), u.EmptyJsonMap(), codeNotFound, `notFound`)
	case http.StatusBadRequest:
		return u.SendError(c, err.Error(), u.EmptyJsonMap(), codeBadRequestError, `badRequest`)
	case http.StatusForbidden:
		return u.SendError(c, err.Error(), u.EmptyJsonMap(), codeForbiddenError, `forbidden`)
	case http.StatusUnauthorized:
		return u.SendError(c, err.Error(), u.EmptyJsonMap(), codeUnauthorizedError, `unAuthorized`)
	default:
		return u.SendError(c, "internal server error", u.EmptyJsonMap(), codeInternalError, `internalServerError`)
	}
}

// SendBadRequest ...
// Send bad request response to consumers.
func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textError, message, data, codeBadRequestError, `badRequest`)
	return u.SendResponse(res)
}

// SendValidationError ...
// Send validation error response to consumers.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) error {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := Underscore(err.StructField())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, map[string]interface{}{
		"code":         codeBadRequestError,
		"code_type":    "validationError",
		"code_message": errorResponse,
		"data":         u.EmptyJsonMap(),
	})
	return nil
}

// SendUnauthorizedError ...
// Send unauthorized response to consumers.
func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeUnauthorizedError, `unAuthorized`)
}

// SendForbiddenError ...
// Send forbidden response to consumers.
func (u *HTTPHelper) SendForbiddenError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeForbiddenError, `forbidden`)
}

// SendNotFoundError ...
// Send not found response to consumers.
func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string, data interface{}) error {
	return u.SendError(c, message, data, codeNotFound, `notFound`)
}

// SendSuccess ...
// Send success response to consumers.
func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) error {
	res := u.SetResponse(c, textOk, message, data, codeSuccess, `success`)
	return u.SendResponse(res)
}

// SendResponse ...
// Send response
func (u *HTTPHelper) SendResponse(res ResponseHelper) error {
	if len(res.Message) == 0 {
		res.Message = `success`
	}

	var resCode int
	switch res.Code {
	case codeSuccess:
		resCode = http.StatusOK
	case codeNotFound:
		resCode = http.StatusNotFound
	case codeUnauthorizedError:
		resCode = http.StatusUnauthorized
	case codeForbiddenError:
		resCode = http.StatusForbidden
	case codeInternalError:
		resCode = http.StatusInternalServerError
	default:
		resCode = http.StatusBadRequest
	}

	res.C.JSON(resCode, map[string]interface{}{
		"code":         res.Code,
		"code_type":    res.CodeType,
		"code_message": res.Message,
		"data":         res.Data,
	})
	return nil
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}

// GeneratePaging ...
// Set pagination response.
func (u *HTTPHelper) GeneratePaging(page, limit int, totalPages int64) map[string]interface{} {
	return map[string]interface{}{
		"per_page":     limit,
		"current_page": page,
		"total_pages":  totalPages,
	}
}

// Underscore converts a StructField name to its snake_case json key.
func Underscore(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
