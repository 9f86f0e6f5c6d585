package handlers

import (
	"strconv"
	"strings"
	"time"
)

const (
	// Formato trocado com os formulários: local, precisão de minuto,
	// sem timezone.
	dateTimeLayout = "2006-01-02T15:04"
	dateLayout     = "2006-01-02"
)

func parseMinute(s string) (time.Time, error) {
	return time.ParseInLocation(dateTimeLayout, strings.TrimSpace(s), time.Local)
}

// parseDate devolve nil para vazio ou ilegível: um limite de filtro
// que não dá para entender é tratado como ausente.
func parseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

// parseDurationMin degrada silenciosamente para 60 quando o campo
// vem vazio ou não-numérico.
func parseDurationMin(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 60
	}
	return n
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
