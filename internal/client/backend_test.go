package client

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeBackend spins up an in-process stand-in for the clustering/photo
// service
func fakeBackend(t *testing.T, register func(*gin.Engine)) *Backend {
	t.Helper()
	router := gin.New()
	register(router)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return NewBackend(srv.URL, testLogger(t))
}

func TestHeatmapDecodesPoints(t *testing.T) {
	b := fakeBackend(t, func(r *gin.Engine) {
		r.GET("/heatmap", func(c *gin.Context) {
			c.JSON(http.StatusOK, []gin.H{
				{"lat": 50.45, "lon": 30.52, "intensity": 0.8, "type": "drone", "direction": "North"},
				{"lat": 50.46, "lon": 30.53, "intensity": 2.5},
				{"lat": 50.47, "lon": 30.54},
			})
		})
	})

	points, err := b.Heatmap(context.Background())
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, 50.45, points[0].Lat)
	assert.Equal(t, "drone", points[0].Type)
	assert.Equal(t, 2.5, points[1].Intensity, "raw intensity must pass through unscaled")
	assert.True(t, math.IsNaN(points[2].Intensity), "absent intensity decodes as NaN for the sanitizer")
}

func TestHeatmapRejectsNonArray(t *testing.T) {
	b := fakeBackend(t, func(r *gin.Engine) {
		r.GET("/heatmap", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"error": "clustering in progress"})
		})
	})

	_, err := b.Heatmap(context.Background())
	require.EqualError(t, err, "invalid data format received")
}

func TestHeatmapHTTPError(t *testing.T) {
	b := fakeBackend(t, func(r *gin.Engine) {
		r.GET("/heatmap", func(c *gin.Context) {
			c.String(http.StatusBadGateway, "upstream down")
		})
	})

	_, err := b.Heatmap(context.Background())
	require.EqualError(t, err, "HTTP 502: Bad Gateway")
}

func TestHeatmapUnreachable(t *testing.T) {
	b := NewBackend("http://127.0.0.1:1", testLogger(t))

	_, err := b.Heatmap(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to reach http://127.0.0.1:1/heatmap")
	assert.Contains(t, err.Error(), "ensure the backend server is running")
}

func TestUploadCaptureSendsMultipart(t *testing.T) {
	var gotField string
	var gotName string
	b := fakeBackend(t, func(r *gin.Engine) {
		r.POST("/capture", func(c *gin.Context) {
			file, err := c.FormFile("file")
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"detail": "missing file field"})
				return
			}
			gotField = "file"
			gotName = file.Filename
			c.JSON(http.StatusOK, gin.H{"status": "stored"})
		})
	})

	path := filepath.Join(t.TempDir(), "sighting.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not really a jpeg"), 0o644))

	require.NoError(t, b.UploadCapture(context.Background(), path))
	assert.Equal(t, "file", gotField)
	assert.Equal(t, "sighting.jpg", gotName)
}

func TestUploadCaptureRejectsUnsupportedExtension(t *testing.T) {
	b := NewBackend("http://127.0.0.1:1", testLogger(t))

	err := b.UploadCapture(context.Background(), "/tmp/report.pdf")
	require.EqualError(t, err, "unsupported file type: .pdf")
}

func TestUploadCaptureSurfacesDetail(t *testing.T) {
	b := fakeBackend(t, func(r *gin.Engine) {
		r.POST("/capture", func(c *gin.Context) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": "image too large"})
		})
	})

	path := filepath.Join(t.TempDir(), "big.png")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	err := b.UploadCapture(context.Background(), path)
	require.EqualError(t, err, "image too large")
}

func TestUploadCaptureGenericFailure(t *testing.T) {
	b := fakeBackend(t, func(r *gin.Engine) {
		r.POST("/capture", func(c *gin.Context) {
			c.String(http.StatusInternalServerError, "boom")
		})
	})

	path := filepath.Join(t.TempDir(), "shot.webp")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	err := b.UploadCapture(context.Background(), path)
	require.EqualError(t, err, "unable to upload image")
}

func TestUploadCaptureMissingFile(t *testing.T) {
	b := NewBackend("http://127.0.0.1:1", testLogger(t))

	err := b.UploadCapture(context.Background(), filepath.Join(t.TempDir(), "gone.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to read photo")
}
