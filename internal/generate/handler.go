package generate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"resume-latex/internal/shared/metrics"
	"resume-latex/internal/shared/server/middleware"
	"resume-latex/internal/shared/server/respond"
	"resume-latex/internal/shared/util"
	"resume-latex/resume/latex"
	"resume-latex/resume/model"
)

const (
	contentTypeText  = "text/plain; charset=utf-8"
	contentTypeTeX   = latex.MIMEType + "; charset=utf-8"
	defaultFileName  = "resume.tex"
	generationHeader = "X-Generation-Id"
)

// Handler serves document generation over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches POST /generate to the given router.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/generate", h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	var rec model.ResumeRecord
	if err := decodeRecord(c.Request.Body, &rec); err != nil {
		metrics.IncGeneration(metrics.ResultRejected)
		h.rejectRequest(c, err)
		return
	}

	fileName := defaultFileName
	if raw := c.Query("filename"); raw != "" {
		name, err := util.SanitizeFileName(raw, ".tex")
		if err != nil {
			metrics.IncGeneration(metrics.ResultRejected)
			respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid filename", nil)
			return
		}
		fileName = name
	}

	res := h.Svc.Generate(c.Request.Context(), middleware.RequestIDFromContext(c), rec)
	if res.GenerationID != "" {
		c.Set(middleware.GenerationIDKey, res.GenerationID)
		c.Header(generationHeader, res.GenerationID)
	}

	contentType := contentTypeText
	if wantsDownload(c) {
		contentType = contentTypeTeX
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	}
	respond.Document(c, http.StatusOK, contentType, res.Document)
}

func wantsDownload(c *gin.Context) bool {
	raw := c.Query("download")
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}

// decodeRecord parses and validates the request body.
func decodeRecord(body io.Reader, rec *model.ResumeRecord) error {
	if body == nil {
		return errEmptyBody
	}
	if err := json.NewDecoder(body).Decode(rec); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return model.Validator().Struct(rec)
}

var errEmptyBody = errors.New("request body is required")

func (h *Handler) rejectRequest(c *gin.Context, err error) {
	var (
		maxErr    *http.MaxBytesError
		verrs     validator.ValidationErrors
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
	)
	switch {
	case errors.As(err, &maxErr):
		respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large",
			fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit), nil)
	case errors.As(err, &verrs):
		respond.Error(c, http.StatusBadRequest, "invalid_request", "resume failed validation", model.FieldErrors(verrs))
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		respond.Error(c, http.StatusBadRequest, "invalid_request", "malformed JSON body", nil)
	case errors.As(err, &typeErr):
		respond.Error(c, http.StatusBadRequest, "invalid_request",
			fmt.Sprintf("field %s must be %s", typeErr.Field, typeErr.Type), nil)
	case errors.Is(err, errEmptyBody):
		respond.Error(c, http.StatusBadRequest, "invalid_request", errEmptyBody.Error(), nil)
	default:
		respond.Error(c, http.StatusBadRequest, "invalid_request", "invalid request body", nil)
	}
}
