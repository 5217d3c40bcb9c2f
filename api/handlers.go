package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aslandrive/aslandrive/generated/db"
	"github.com/aslandrive/aslandrive/generated/models"
)

const (
	defaultLimit = 100
	maxLimit     = 1000
)

// OHLCVResponse is the wire form of one daily bar.
type OHLCVResponse struct {
	Symbol    string    `json:"symbol"`
	Date      string    `json:"date"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
	CreatedAt time.Time `json:"created_at"`
}

// SymbolResponse is the wire form of one symbol's metadata.
type SymbolResponse struct {
	Symbol     string    `json:"symbol"`
	Name       *string   `json:"name"`
	AssetClass string    `json:"asset_class"`
	Exchange   *string   `json:"exchange"`
	Currency   string    `json:"currency"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// HealthResponse reports service and data freshness status.
type HealthResponse struct {
	Status            string  `json:"status"`
	DatabaseConnected bool    `json:"database_connected"`
	LatestDataDate    *string `json:"latest_data_date"`
	TotalSymbols      *int64  `json:"total_symbols"`
	TotalRecords      *int64  `json:"total_records"`
}

func toOHLCVResponse(row models.DailyOhlcv) OHLCVResponse {
	return OHLCVResponse{
		Symbol:    row.Symbol,
		Date:      row.Date.Format("2006-01-02"),
		Open:      row.Open,
		High:      row.High,
		Low:       row.Low,
		Close:     row.Close,
		Volume:    row.Volume,
		CreatedAt: row.CreatedAt,
	}
}

func parseLimit(raw string) (int, error) {
	if raw == "" {
		return defaultLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, fmt.Errorf("limit must be a positive integer")
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return limit, nil
}

func (s *Server) handleOHLCV(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	limit, err := parseLimit(r.URL.Query().Get("limit"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	query := fmt.Sprintf(
		"SELECT symbol, date, open, high, low, close, volume, created_at FROM %s WHERE symbol = $1",
		db.DailyOhlcv.Name)
	args := []any{symbol}

	for _, bound := range []struct{ param, op string }{
		{"start", ">="},
		{"end", "<="},
	} {
		raw := r.URL.Query().Get(bound.param)
		if raw == "" {
			continue
		}
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, bound.param+" must be YYYY-MM-DD")
			return
		}
		args = append(args, day)
		query += fmt.Sprintf(" AND date %s $%d", bound.op, len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d", len(args))

	rows, err := s.pool.Query(r.Context(), query, args...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	defer rows.Close()

	var out []OHLCVResponse
	for rows.Next() {
		var row models.DailyOhlcv
		if err := rows.Scan(&row.Symbol, &row.Date, &row.Open, &row.High, &row.Low, &row.Close, &row.Volume, &row.CreatedAt); err != nil {
			writeError(w, http.StatusInternalServerError, "scan failed")
			return
		}
		out = append(out, toOHLCVResponse(row))
	}
	if rows.Err() != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	if len(out) == 0 {
		writeError(w, http.StatusNotFound, "no data for symbol "+symbol)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSymbols(w http.ResponseWriter, r *http.Request) {
	query := fmt.Sprintf(
		"SELECT symbol, name, asset_class, exchange, currency, active, created_at, updated_at FROM %s WHERE active = true ORDER BY symbol",
		db.Symbols.Name)

	rows, err := s.pool.Query(r.Context(), query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}
	defer rows.Close()

	out := []SymbolResponse{}
	for rows.Next() {
		var row models.Symbols
		if err := rows.Scan(&row.Symbol, &row.Name, &row.AssetClass, &row.Exchange, &row.Currency, &row.Active, &row.CreatedAt, &row.UpdatedAt); err != nil {
			writeError(w, http.StatusInternalServerError, "scan failed")
			return
		}
		out = append(out, SymbolResponse{
			Symbol:     row.Symbol,
			Name:       row.Name,
			AssetClass: row.AssetClass,
			Exchange:   row.Exchange,
			Currency:   row.Currency,
			Active:     row.Active,
			CreatedAt:  row.CreatedAt,
			UpdatedAt:  row.UpdatedAt,
		})
	}
	if rows.Err() != nil {
		writeError(w, http.StatusInternalServerError, "query failed")
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{Status: "healthy"}

	if err := s.pool.Ping(r.Context()); err != nil {
		resp.Status = "unhealthy"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}
	resp.DatabaseConnected = true

	var latest *time.Time
	var totalRecords int64
	statsQuery := fmt.Sprintf("SELECT MAX(date), COUNT(*) FROM %s", db.DailyOhlcv.Name)
	if err := s.pool.QueryRow(r.Context(), statsQuery).Scan(&latest, &totalRecords); err == nil {
		resp.TotalRecords = &totalRecords
		if latest != nil {
			formatted := latest.Format("2006-01-02")
			resp.LatestDataDate = &formatted
		}
	} else {
		resp.Status = "degraded"
	}

	var totalSymbols int64
	symbolsQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE active = true", db.Symbols.Name)
	if err := s.pool.QueryRow(r.Context(), symbolsQuery).Scan(&totalSymbols); err == nil {
		resp.TotalSymbols = &totalSymbols
	} else {
		resp.Status = "degraded"
	}

	writeJSON(w, http.StatusOK, resp)
}
