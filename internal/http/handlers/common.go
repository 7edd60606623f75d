package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/missions-backend/internal/domain/science"
	"github.com/yungbote/missions-backend/internal/http/response"
	"github.com/yungbote/missions-backend/internal/platform/apierr"
	"github.com/yungbote/missions-backend/internal/platform/ctxutil"
	"github.com/yungbote/missions-backend/internal/platform/dbctx"
	"github.com/yungbote/missions-backend/internal/platform/logger"
)

func requestDBC(c *gin.Context) dbctx.Context {
	return dbctx.Context{Ctx: c.Request.Context()}
}

// parseID reads the :id path param. Anything other than a positive integer is
// reported as a missing entity.
func parseID(c *gin.Context, entity string) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, strconv.IntSize)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%s %q: %w", entity, raw, science.ErrNotFound)
	}
	return uint(id), nil
}

// decodeJSON decodes a single JSON object into dst and rejects unknown fields
// and trailing data.
func decodeJSON(c *gin.Context, dst any) error {
	if c.Request.Body == nil {
		return apierr.New(http.StatusBadRequest, apierr.CodeBadRequest, errors.New("empty body"))
	}
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return apierr.New(http.StatusRequestEntityTooLarge, apierr.CodeTooLarge, err)
		}
		return apierr.New(http.StatusBadRequest, apierr.CodeBadRequest, fmt.Errorf("decode body: %w", err))
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return apierr.New(http.StatusBadRequest, apierr.CodeBadRequest, errors.New("unexpected data after JSON object"))
	}
	return nil
}

// writeError logs err with the request ids and writes the mapped response.
func writeError(c *gin.Context, log *logger.Logger, entity string, err error) {
	ae := apierr.FromError(err)
	_ = c.Error(err)
	fields := append([]interface{}{"code", ae.Code, "error", err}, ctxutil.LogFields(c.Request.Context())...)
	if ae.Status >= http.StatusInternalServerError {
		log.Error("request failed", fields...)
	} else {
		log.Debug("request rejected", fields...)
	}
	response.RespondError(c, ae.Status, entity)
}
