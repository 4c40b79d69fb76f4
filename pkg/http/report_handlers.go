package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

type WeeklyRotationQuery struct {
	From time.Time `zog:"from"`
	To   time.Time `zog:"to"`
}

var weeklyRotationQuerySchema = z.Struct(z.Shape{
	"From": z.Time(),
	"To":   z.Time(),
})

func (rs *RestfulServer) GetWeeklyRotation(c *gin.Context) {
	var query WeeklyRotationQuery
	if err := weeklyRotationQuerySchema.Parse(zhttp.Request(c.Request), &query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	days, err := rs.Brace.Report.WeeklyRotation(c.Request.Context(), optionalTime(query.From), optionalTime(query.To))
	if err != nil {
		rs.respondError(c, err)
		return
	}
	respondList(c, days, "No weeklyrotation data found.")
}

type MonthlyRotationQuery struct {
	Year int `zog:"year"`
}

var monthlyRotationQuerySchema = z.Struct(z.Shape{
	"Year": z.Int().GT(0),
})

func (rs *RestfulServer) GetMonthlyRotation(c *gin.Context) {
	var query MonthlyRotationQuery
	if err := monthlyRotationQuerySchema.Parse(zhttp.Request(c.Request), &query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}
	if query.Year == 0 {
		query.Year = time.Now().UTC().Year()
	}

	months, err := rs.Brace.Report.MonthlyRotation(c.Request.Context(), query.Year)
	if err != nil {
		rs.respondError(c, err)
		return
	}
	respondList(c, months, "No monthly rotation data found.")
}
