package tabular

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Formato de fecha/hora persistido en el almacén.
const (
	dateLayout = "2006-01-02"
	timeLayout = time.RFC3339
)

// NewID genera un identificador asignado por el almacén, derivado del tiempo:
// PREFIJO-AAAAMMDDhhmmss-fragmento. El fragmento UUID evita colisiones dentro
// del mismo segundo.
func NewID(prefix string) string {
	return prefix + "-" + time.Now().Format("20060102150405") + "-" + uuid.NewString()[:8]
}

func formatInt(n int64) string { return strconv.FormatInt(n, 10) }

func parseInt(s string) int64 {
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func parseBool(s string) bool { return s == "true" || s == "TRUE" || s == "1" }

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t
	}
	// filas antiguas pueden traer fecha-hora completa
	t, _ := time.Parse(timeLayout, s)
	return t
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(timeLayout, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	if t.IsZero() {
		return nil
	}
	return &t
}
