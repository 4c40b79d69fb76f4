package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kxngreece/Healstep-API/pkg/models"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type UserRequest struct {
	Name    string `json:"name" zog:"name"`
	Email   string `json:"email" zog:"email"`
	BraceID string `json:"brace_id" zog:"brace_id"`
	Role    string `json:"role" zog:"role"`
}

var userRequestSchema = z.Struct(z.Shape{
	"Name":    z.String().Required(),
	"Email":   z.String().Email(),
	"BraceID": z.String(),
	"Role":    z.String(),
})

func (rs *RestfulServer) PostUser(c *gin.Context) {
	var req UserRequest
	if err := userRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Brace.Records.CreateUser(c.Request.Context(), &models.User{
		Name:    req.Name,
		Email:   req.Email,
		BraceID: req.BraceID,
		Role:    req.Role,
	})
	if err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (rs *RestfulServer) GetUsers(c *gin.Context) {
	users, err := rs.Brace.Records.ListUsers(c.Request.Context())
	if err != nil {
		rs.respondError(c, err)
		return
	}
	respondList(c, users, "No users data found.")
}

func (rs *RestfulServer) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be a positive integer"})
		return
	}

	user, err := rs.Brace.Records.GetUser(c.Request.Context(), uint(id))
	if err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type AppointmentRequest struct {
	BraceID     string `json:"brace_id" zog:"brace_id"`
	Name        string `json:"name" zog:"name"`
	Email       string `json:"email" zog:"email"`
	PhoneNumber string `json:"phone_number" zog:"phone_number"`
	Reason      string `json:"reason" zog:"reason"`
}

var appointmentRequestSchema = z.Struct(z.Shape{
	"BraceID":     z.String().Required(),
	"Name":        z.String().Required(),
	"Email":       z.String().Email(),
	"PhoneNumber": z.String(),
	"Reason":      z.String(),
})

func (rs *RestfulServer) PostAppointment(c *gin.Context) {
	var req AppointmentRequest
	if err := appointmentRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	appointment, err := rs.Brace.Records.CreateAppointment(c.Request.Context(), &models.Appointment{
		BraceID:     req.BraceID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Reason:      req.Reason,
	})
	if err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

func (rs *RestfulServer) GetAppointments(c *gin.Context) {
	appointments, err := rs.Brace.Records.ListAppointments(c.Request.Context())
	if err != nil {
		rs.respondError(c, err)
		return
	}
	respondList(c, appointments, "No appointment data found.")
}

func (rs *RestfulServer) GetAppointmentCount(c *gin.Context) {
	count, err := rs.Brace.Records.CountAppointments(c.Request.Context())
	if err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"number": count})
}

type FeedbackRequest struct {
	BraceID string `json:"brace_id" zog:"brace_id"`
	Body    string `json:"body" zog:"body"`
	Type    string `json:"type" zog:"type"`
}

var feedbackRequestSchema = z.Struct(z.Shape{
	"BraceID": z.String().Required(),
	"Body":    z.String().Required(),
	"Type":    z.String().Required(),
})

func (rs *RestfulServer) PostFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := feedbackRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if _, err := rs.Brace.Records.CreateFeedback(c.Request.Context(), &models.Feedback{
		BraceID: req.BraceID,
		Body:    req.Body,
		Type:    req.Type,
	}); err != nil {
		rs.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Feedback successfully submitted."})
}

func (rs *RestfulServer) GetFeedback(c *gin.Context) {
	feedback, err := rs.Brace.Records.ListFeedback(c.Request.Context())
	if err != nil {
		rs.respondError(c, err)
		return
	}
	respondList(c, feedback, "No feedback data found.")
}
