package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/akinalp/vitrin/database"
	"github.com/akinalp/vitrin/models"
	"github.com/akinalp/vitrin/pkg"
)

// requireRowsAffected, UPDATE/DELETE sonucunda hiç satır etkilenmediyse
// pkg.ErrNotFound döner — handler bunu 404'e çevirir.
func requireRowsAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return pkg.ErrNotFound
	}
	return nil
}

// updateOrderIndexes, sıralı liste tablolarının ortak reorder sorgusu.
// table parametresi her zaman sabit bir tablo adıdır, kullanıcı girdisi değil.
// Bilinmeyen bir id sessizce atlanmaz — ErrNotFound ile tüm işlem iptal olur;
// atomiklik için tx-bound repo üzerinden çağrılmalıdır.
func updateOrderIndexes(ctx context.Context, db database.TxQuerier, table string, items []models.OrderUpdate) error {
	query := fmt.Sprintf(`UPDATE %s SET order_index = ? WHERE id = ?`, table)

	for _, item := range items {
		result, err := db.ExecContext(ctx, query, item.OrderIndex, item.ID)
		if err != nil {
			return fmt.Errorf("failed to update order index: %w", err)
		}
		if err := requireRowsAffected(result); err != nil {
			return fmt.Errorf("%w: unknown id %s", pkg.ErrNotFound, item.ID)
		}
	}

	return nil
}
