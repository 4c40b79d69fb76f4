package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kxngreece/Healstep-API/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type ReadingRequest struct {
	BraceID       string  `json:"brace_id" zog:"brace_id"`
	Angle         float64 `json:"angle" zog:"angle"`
	MuscleReading float64 `json:"muscle_reading" zog:"muscle_reading"`
}

var readingRequestSchema = z.Struct(z.Shape{
	"BraceID":       z.String().Required(),
	"Angle":         z.Float64().Required(),
	"MuscleReading": z.Float64().Required(),
})

func (rs *RestfulServer) PostReading(c *gin.Context) {
	var req ReadingRequest
	if err := readingRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !rs.CheckBraceLimiter(req.BraceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	result, err := rs.Brace.Reading.Ingest(c.Request.Context(), &models.ReadingInput{
		BraceID:       req.BraceID,
		Angle:         req.Angle,
		MuscleReading: req.MuscleReading,
	})
	if err != nil {
		rs.respondError(c, err)
		return
	}

	body := gin.H{
		"message": "Reading successfully stored.",
		"reading": result.Reading,
	}
	if result.Alert != nil {
		body["alert"] = result.Alert
	}
	c.JSON(http.StatusCreated, body)
}

type ReadingQuery struct {
	BraceID string    `zog:"brace_id"`
	From    time.Time `zog:"from"`
	To      time.Time `zog:"to"`
}

var readingQuerySchema = z.Struct(z.Shape{
	"BraceID": z.String(),
	"From":    z.Time(),
	"To":      z.Time(),
})

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func (rs *RestfulServer) listReadings(c *gin.Context) ([]models.Reading, bool) {
	var query ReadingQuery
	if err := readingQuerySchema.Parse(zhttp.Request(c.Request), &query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return nil, false
	}

	readings, err := rs.Brace.Reading.ListReadings(c.Request.Context(), models.ReadingFilter{
		BraceID: query.BraceID,
		From:    optionalTime(query.From),
		To:      optionalTime(query.To),
	})
	if err != nil {
		rs.respondError(c, err)
		return nil, false
	}
	return readings, true
}

type AngleView struct {
	BraceID   string    `json:"brace_id"`
	Angle     float64   `json:"angle"`
	TimeStamp time.Time `json:"time_stamp"`
}

type EmgView struct {
	BraceID       string    `json:"brace_id"`
	MuscleReading float64   `json:"muscle_reading"`
	TimeStamp     time.Time `json:"time_stamp"`
}

func (rs *RestfulServer) GetAngle(c *gin.Context) {
	readings, ok := rs.listReadings(c)
	if !ok {
		return
	}
	views := make([]AngleView, 0, len(readings))
	for _, r := range readings {
		views = append(views, AngleView{BraceID: r.BraceID, Angle: r.Angle, TimeStamp: r.TimeStamp})
	}
	respondList(c, views, "No angle data found.")
}

func (rs *RestfulServer) GetEmg(c *gin.Context) {
	readings, ok := rs.listReadings(c)
	if !ok {
		return
	}
	views := make([]EmgView, 0, len(readings))
	for _, r := range readings {
		views = append(views, EmgView{BraceID: r.BraceID, MuscleReading: r.MuscleReading, TimeStamp: r.TimeStamp})
	}
	respondList(c, views, "No muscle activity data found.")
}

type AlertRequest struct {
	BraceID string `json:"brace_id" zog:"brace_id"`
	Type    string `json:"type" zog:"type"`
	Message string `json:"message" zog:"message"`
}

var alertRequestSchema = z.Struct(z.Shape{
	"BraceID": z.String().Required(),
	"Type":    z.String().Required(),
	"Message": z.String().Required(),
})

func (rs *RestfulServer) PostAlert(c *gin.Context) {
	var req AlertRequest
	if err := alertRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	alert, err := rs.Brace.Alert.RaiseAlert(c.Request.Context(), &models.AlertInput{
		BraceID: req.BraceID,
		Type:    models.AlertType(req.Type),
		Message: req.Message,
	})
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Alert successfully submitted.", "alert": alert})
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	alerts, err := rs.Brace.Alert.AlertHistory(c.Request.Context(), models.AlertFilter{
		BraceID: c.Query("brace_id"),
	})
	if err != nil {
		rs.respondError(c, err)
		return
	}
	respondList(c, alerts, "No alerts data found.")
}

func (rs *RestfulServer) GetAlertCount(c *gin.Context) {
	count, err := rs.Brace.Alert.CountAlerts(c.Request.Context())
	if err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"number": count})
}

type ThresholdRequest struct {
	BraceID             string  `json:"brace_id" zog:"brace_id"`
	UpperAngleThreshold float64 `json:"upper_angle_threshold" zog:"upper_angle_threshold"`
	LowerAngleThreshold float64 `json:"lower_angle_threshold" zog:"lower_angle_threshold"`
	Contact             string  `json:"contact" zog:"contact"`
}

var thresholdRequestSchema = z.Struct(z.Shape{
	"BraceID":             z.String().Required(),
	"UpperAngleThreshold": z.Float64().Required(),
	"LowerAngleThreshold": z.Float64().Required(),
	"Contact":             z.String(),
})

func (rs *RestfulServer) PostSettings(c *gin.Context) {
	var req ThresholdRequest
	if err := thresholdRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	threshold, err := rs.Brace.Threshold.SetThreshold(c.Request.Context(), &models.ThresholdInput{
		BraceID:             req.BraceID,
		UpperAngleThreshold: req.UpperAngleThreshold,
		LowerAngleThreshold: req.LowerAngleThreshold,
		Contact:             req.Contact,
	})
	if err != nil {
		rs.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Settings successfully stored.", "setting": threshold})
}

func (rs *RestfulServer) GetSettings(c *gin.Context) {
	thresholds, err := rs.Brace.Threshold.ListThresholds(c.Request.Context())
	if err != nil {
		rs.respondError(c, err)
		return
	}
	respondList(c, thresholds, "No settings data found.")
}

func (rs *RestfulServer) GetBraceSettings(c *gin.Context) {
	threshold, err := rs.Brace.Threshold.CurrentThreshold(c.Request.Context(), c.Param("brace_id"))
	if err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, threshold)
}

type DeviceRequest struct {
	BraceID     string `json:"brace_id" zog:"brace_id"`
	DisplayName string `json:"display_name" zog:"display_name"`
}

var deviceRequestSchema = z.Struct(z.Shape{
	"BraceID":     z.String().Required(),
	"DisplayName": z.String(),
})

func (rs *RestfulServer) PostDevice(c *gin.Context) {
	var req DeviceRequest
	if err := deviceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	device, err := rs.Brace.Device.RegisterDevice(c.Request.Context(), req.BraceID, req.DisplayName)
	if err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, device)
}

func (rs *RestfulServer) GetDevices(c *gin.Context) {
	devices, err := rs.Brace.Device.ListDevices(c.Request.Context())
	if err != nil {
		rs.respondError(c, err)
		return
	}
	respondList(c, devices, "No device data found.")
}

type LimiterRequest struct {
	Rate  float64 `json:"rate" zog:"rate"`
	Burst int     `json:"burst" zog:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	braceID := c.Param("brace_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.SetLimiter(braceID, req.Rate, req.Burst); err != nil {
		rs.respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	if err := rs.Brace.Db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
