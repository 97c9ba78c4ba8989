package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data into the campaign-engine database: a couple of
// tenants with campaigns ready for execution, one of them on a cron schedule.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	tenants := []string{"acme", "globex"}
	for ti, tenant := range tenants {
		for i := 1; i <= 3; i++ {
			id := int64(ti*10 + i)
			name := fmt.Sprintf("%s launch wave %d", tenant, i)
			schedule := ""
			if i == 3 {
				schedule = "0 9 * * *" // daily morning run
			}
			_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, tenant_id, name, status, schedule_cron, execution_step_index, created_at, updated_at)
VALUES ($1,$2,$3,'active',$4,0,now(),now()) ON CONFLICT DO NOTHING`,
				id, tenant, name, schedule)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
