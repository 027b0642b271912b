package services

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"payadmin-backend/internal/models"
)

// GenerateTransactionCSV generates a CSV file content for transactions
func GenerateTransactionCSV(transactions []models.Transaction) ([]byte, error) {
	b := &bytes.Buffer{}
	w := csv.NewWriter(b)

	// Write header
	header := []string{
		"ID", "Created At", "Platform", "Chat ID", "Full Name", "Card Number",
		"Amount", "Unique Amount", "Type", "Status",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, t := range transactions {
		createdAt := ""
		if !t.CreatedAt.IsZero() {
			createdAt = t.CreatedAt.UTC().Format(time.RFC3339)
		}
		record := []string{
			strconv.FormatInt(t.ID, 10),
			createdAt,
			t.Platform,
			strconv.FormatInt(t.ChatID, 10),
			t.FullName,
			t.CardNumber,
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			strconv.FormatFloat(t.UniqueAmount, 'f', 2, 64),
			string(t.Type),
			string(t.Status),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}
