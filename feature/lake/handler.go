package lake

import (
	"errors"
	"path/filepath"

	"quotes-lake/core/logger"
	"quotes-lake/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the object store layout.
type Handler struct {
	store      *Store
	logger     *zap.Logger
	allowReset bool
}

// NewHandler creates a new HTTP handler. allowReset enables the reset endpoint.
func NewHandler(store *Store, logger *zap.Logger, allowReset bool) *Handler {
	return &Handler{store: store, logger: logger, allowReset: allowReset}
}

// RegisterRoutes registers the lake routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/lake")
	group.Get("/layout", h.HandleLayout)
	group.Post("/init", h.HandleInit)
	group.Get("/status", h.HandleStatus)
	group.Post("/reset", h.HandleReset)
	group.Get("/:bucket/objects", h.HandleList)
	group.Post("/:bucket/:space/objects", h.HandleUpload)
	group.Get("/:bucket/:space/flow/:name", h.HandlePullFlow)
	group.Delete("/:bucket/:space/flow/:name", h.HandleDeleteFlow)
	group.Get("/:bucket/:space/backup/:name", h.HandlePullBackup)
	group.Delete("/:bucket/:space/backup/:name", h.HandleDeleteBackup)
}

// errorStatus maps store errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnknownSpace), errors.Is(err, ErrObjectNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrLocalFileNotFound):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func (h *Handler) fail(c *fiber.Ctx, msg string, err error) error {
	status := errorStatus(err)
	l := logger.WithRayID(h.logger, c)
	if status == fiber.StatusInternalServerError {
		l.Error(msg, zap.Error(err))
	} else {
		l.Warn(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// HandleLayout returns the configured buckets and spaces.
// @Summary Get Layout
// @Description Returns the configured buckets, their spaces and backup settings.
// @Tags lake
// @Produce json
// @Success 200 {object} layout.Layout "Layout"
// @Router /lake/layout [get]
func (h *Handler) HandleLayout(c *fiber.Ctx) error {
	return c.JSON(h.store.Layout())
}

// HandleInit provisions every bucket and folder of the layout.
// @Summary Initialise Object Store
// @Description Creates missing buckets and flow/backup folders. Existing ones are left untouched.
// @Tags lake
// @Produce json
// @Success 200 {object} map[string]interface{} "Init Result"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /lake/init [post]
func (h *Handler) HandleInit(c *fiber.Ctx) error {
	if err := h.store.EnsureLayout(c.Context()); err != nil {
		return h.fail(c, "Layout provisioning failed", err)
	}
	return c.JSON(fiber.Map{"status": "initialized", "buckets": h.store.Layout().BucketNames()})
}

// HandleStatus compares the object store with the layout.
// @Summary Layout Status
// @Description Lists buckets and folders missing from the object store.
// @Tags lake
// @Produce json
// @Success 200 {object} StructureReport "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /lake/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	report, err := h.store.Status(c.Context())
	if err != nil {
		return h.fail(c, "Status check failed", err)
	}
	return c.JSON(report)
}

// HandleList lists the objects of a bucket.
// @Summary List Objects
// @Description Lists objects of a bucket recursively, optionally under a prefix.
// @Tags lake
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param prefix query string false "Key prefix"
// @Success 200 {array} ObjectEntry "Objects"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /lake/{bucket}/objects [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	entries, err := h.store.List(c.Context(), c.Params("bucket"), c.Query("prefix"))
	if err != nil {
		return h.fail(c, "Listing failed", err)
	}
	return c.JSON(entries)
}

// HandleUpload stages an uploaded file and places it into a space.
// @Summary Upload Object
// @Description Uploads a file into the flow folder of a space, with a timestamped backup copy when the space is backed up.
// @Tags lake
// @Accept multipart/form-data
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param space path string true "Space name"
// @Param file formData file true "File to upload"
// @Param name formData string false "Object name in the flow folder"
// @Success 201 {object} PutResult "Written keys"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Unknown space"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /lake/{bucket}/{space}/objects [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	bucket, space := c.Params("bucket"), c.Params("space")
	if !h.store.Layout().HasSpace(bucket, space) {
		return h.fail(c, "Upload rejected", ErrUnknownSpace)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file"})
	}

	localName := filepath.Base(file.Filename)
	if err := c.SaveFile(file, h.store.LocalPath(localName)); err != nil {
		return h.fail(c, "Staging failed", err)
	}

	result, err := h.store.Put(c.Context(), bucket, space, localName, c.FormValue("name"))
	if err != nil {
		return h.fail(c, "Upload failed", err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// HandlePullFlow downloads a flow object into the staging folder and streams it back.
// @Summary Download Flow Object
// @Tags lake
// @Produce octet-stream
// @Param bucket path string true "Bucket name"
// @Param space path string true "Space name"
// @Param name path string true "Object name"
// @Success 200 {file} file "Object content"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /lake/{bucket}/{space}/flow/{name} [get]
func (h *Handler) HandlePullFlow(c *fiber.Ctx) error {
	path, err := h.store.PullFlow(c.Context(), c.Params("bucket"), c.Params("space"), c.Params("name"))
	if err != nil {
		return h.fail(c, "Download failed", err)
	}
	return c.Download(path)
}

// HandlePullBackup downloads a backup object into the staging folder and streams it back.
// @Summary Download Backup Object
// @Tags lake
// @Produce octet-stream
// @Param bucket path string true "Bucket name"
// @Param space path string true "Space name"
// @Param name path string true "Object name"
// @Success 200 {file} file "Object content"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /lake/{bucket}/{space}/backup/{name} [get]
func (h *Handler) HandlePullBackup(c *fiber.Ctx) error {
	path, err := h.store.PullBackup(c.Context(), c.Params("bucket"), c.Params("space"), c.Params("name"))
	if err != nil {
		return h.fail(c, "Download failed", err)
	}
	return c.Download(path)
}

// HandleDeleteFlow removes a flow object.
// @Summary Delete Flow Object
// @Tags lake
// @Param bucket path string true "Bucket name"
// @Param space path string true "Space name"
// @Param name path string true "Object name"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /lake/{bucket}/{space}/flow/{name} [delete]
func (h *Handler) HandleDeleteFlow(c *fiber.Ctx) error {
	if err := h.store.DeleteFlow(c.Context(), c.Params("bucket"), c.Params("space"), c.Params("name")); err != nil {
		return h.fail(c, "Delete failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteBackup removes a backup object.
// @Summary Delete Backup Object
// @Tags lake
// @Param bucket path string true "Bucket name"
// @Param space path string true "Space name"
// @Param name path string true "Object name"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /lake/{bucket}/{space}/backup/{name} [delete]
func (h *Handler) HandleDeleteBackup(c *fiber.Ctx) error {
	if err := h.store.DeleteBackup(c.Context(), c.Params("bucket"), c.Params("space"), c.Params("name")); err != nil {
		return h.fail(c, "Delete failed", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleReset wipes every bucket of the object store.
// @Summary Reset Object Store
// @Description Deletes every object and bucket on the server. Requires server reset to be allowed and confirm=yes.
// @Tags lake
// @Produce json
// @Param confirm query string true "Must be yes"
// @Success 200 {object} ResetReport "Reset Report"
// @Failure 400 {object} map[string]string "Missing confirmation"
// @Failure 403 {object} map[string]string "Reset disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /lake/reset [post]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	if !h.allowReset {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "reset is disabled"})
	}
	if confirmed, _ := utils.ParseBool(c.Query("confirm")); !confirmed {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "confirm=yes is required"})
	}

	l.Warn("Resetting object store")
	report, err := h.store.Reset(c.Context())
	if err != nil {
		return h.fail(c, "Reset failed", err)
	}
	return c.JSON(report)
}
