package handlers

import (
	"encoding/json"
	"log"
	"time"

	"github.com/avasseur/portfolio-builder/internal/constants"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// VisitorInfo is one entry of the per-session visitor log.
type VisitorInfo struct {
	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
	Referrer  string `json:"referrer"`
	Timestamp string `json:"timestamp"`
}

// The visitor log lives in the cookie session as a JSON string, capped at
// the most recent entries so the cookie cannot grow without bound.

func loadVisitorLog(c *gin.Context) []VisitorInfo {
	session := sessions.Default(c)
	raw, ok := session.Get(constants.SessionKeyVisitors).(string)
	if !ok || raw == "" {
		return []VisitorInfo{}
	}

	var visitors []VisitorInfo
	if err := json.Unmarshal([]byte(raw), &visitors); err != nil {
		return []VisitorInfo{}
	}
	return visitors
}

func appendVisitorLog(c *gin.Context) {
	visitors := loadVisitorLog(c)
	visitors = append(visitors, VisitorInfo{
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referrer:  c.Request.Referer(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if len(visitors) > constants.MaxVisitorLogEntries {
		visitors = visitors[len(visitors)-constants.MaxVisitorLogEntries:]
	}

	raw, err := json.Marshal(visitors)
	if err != nil {
		log.Printf("Failed to encode visitor log: %v", err)
		return
	}

	session := sessions.Default(c)
	session.Set(constants.SessionKeyVisitors, string(raw))
	if err := session.Save(); err != nil {
		log.Printf("Failed to save visitor log: %v", err)
	}
}
