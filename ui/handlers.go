package ui

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"messtrack/app"
	"messtrack/domain/attendance"
)

var allowedExtensions = []string{".xls", ".xlsx"}

func (s *Server) handleLogin(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	token, err := s.auth.Login(req.Username, req.Password)
	if err != nil {
		log.Printf("[handleLogin] FAILED - invalid credentials for %q", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// handleUpload accepts one or more spreadsheet files plus a mess tag and
// runs each through the ingestion pipeline. Files are processed one at a
// time in submission order; each gets its own result entry.
func (s *Server) handleUpload(c *gin.Context) {
	mess := strings.TrimSpace(c.PostForm("mess"))
	if mess == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mess tag is required"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		log.Printf("[handleUpload] FAILED - bad multipart form: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}
	headers := form.File["sheets"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}

	var files []app.UploadedFile
	var spooled []string
	defer func() {
		for _, path := range spooled {
			os.Remove(path)
		}
	}()

	results := make([]app.FileResult, 0, len(headers))
	for _, header := range headers {
		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !isAllowedExtension(ext) {
			results = append(results, app.FileResult{
				Filename: header.Filename,
				Error:    fmt.Sprintf("unsupported file format %q (only .xls and .xlsx are accepted)", ext),
			})
			continue
		}
		if header.Size > s.maxFileBytes {
			results = append(results, app.FileResult{
				Filename: header.Filename,
				Error:    fmt.Sprintf("file size exceeds the %d MB limit", s.maxFileBytes/(1024*1024)),
			})
			continue
		}

		// Spool to disk: both sheet readers want a file path.
		tmpPath := filepath.Join(s.tempDir, uuid.NewString()+ext)
		if err := c.SaveUploadedFile(header, tmpPath); err != nil {
			log.Printf("[handleUpload] FAILED - spooling %s: %v", header.Filename, err)
			results = append(results, app.FileResult{Filename: header.Filename, Error: "could not store uploaded file"})
			continue
		}
		spooled = append(spooled, tmpPath)
		files = append(files, app.UploadedFile{Filename: header.Filename, Path: tmpPath})
	}

	results = append(results, s.ingest.ProcessBatch(c.Request.Context(), files, mess)...)

	c.JSON(http.StatusOK, gin.H{"mess": mess, "files": results})
}

func (s *Server) handleAttendance(c *gin.Context) {
	filter := attendance.Filter{
		RollNo: c.Query("roll"),
		Mess:   c.Query("mess"),
	}
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
			return
		}
		filter.Year = year
	}

	report, err := s.query.Attendance(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (s *Server) handleListSheets(c *gin.Context) {
	sheets, err := s.query.Sheets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sheets": sheets})
}

func (s *Server) handleSheetSummary(c *gin.Context) {
	key, ok := sheetKeyFromQuery(c)
	if !ok {
		return
	}

	summary, err := s.summary.SheetSummary(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleDeleteSheet(c *gin.Context) {
	key, ok := sheetKeyFromQuery(c)
	if !ok {
		return
	}

	deleted, err := s.query.DeleteSheet(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("[handleDeleteSheet] removed %d records for %s/%d/%s", deleted, key.Month, key.Year, key.Mess)
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func sheetKeyFromQuery(c *gin.Context) (attendance.SheetKey, bool) {
	key := attendance.SheetKey{
		Month: c.Query("month"),
		Mess:  c.Query("mess"),
	}
	yearStr := c.Query("year")
	if yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be an integer"})
			return key, false
		}
		key.Year = year
	}
	return key, true
}

func isAllowedExtension(ext string) bool {
	for _, allowed := range allowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
