package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/agencydash/analytics-dashboard-api/infrastructure/database/postgres"
	"github.com/agencydash/analytics-dashboard-api/internal/domain"
	"github.com/lib/pq"
)

const teamTargetsTable = "team_targets"

// TeamTargetsRepository stores the per-team goal values supplied by the
// dashboard. Source data (deals, time entries, invoices) is never persisted;
// targets are user configuration, not source data.
type TeamTargetsRepository interface {
	GetAll() (domain.TargetsByTeam, error)
	GetByTeam(team string) (*domain.TeamTargets, error)
	SaveOrUpdate(team string, targets domain.TeamTargets) error
	Delete(team string) error
}

type teamTargetsRepository struct {
	conn *postgres.Connection
}

func NewTeamTargetsRepository(conn *postgres.Connection) TeamTargetsRepository {
	return &teamTargetsRepository{
		conn: conn,
	}
}

func (r *teamTargetsRepository) GetAll() (domain.TargetsByTeam, error) {
	query, args, err := squirrel.
		Select("team", "revenue_target", "collection_target", "utilization_target_hours", "profitability_target_pct").
		From(teamTargetsTable).
		OrderBy("team ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building team targets query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying team targets: %w", err)
	}
	defer rows.Close()

	targets := make(domain.TargetsByTeam)
	for rows.Next() {
		var team string
		var t domain.TeamTargets
		err := rows.Scan(
			&team,
			&t.RevenueTarget,
			&t.CollectionTarget,
			&t.UtilizationTargetHours,
			&t.ProfitabilityTargetPct,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning team targets: %w", err)
		}
		targets[team] = t
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team targets rows: %w", err)
	}

	return targets, nil
}

func (r *teamTargetsRepository) GetByTeam(team string) (*domain.TeamTargets, error) {
	query, args, err := squirrel.
		Select("revenue_target", "collection_target", "utilization_target_hours", "profitability_target_pct").
		From(teamTargetsTable).
		Where(squirrel.Eq{"team": team}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building team targets query: %w", err)
	}

	var t domain.TeamTargets
	err = r.conn.QueryRow(query, args...).Scan(
		&t.RevenueTarget,
		&t.CollectionTarget,
		&t.UtilizationTargetHours,
		&t.ProfitabilityTargetPct,
	)
	if err != nil {
		// Absent team means the all-zero target object, not an error.
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning team targets: %w", err)
	}

	return &t, nil
}

func (r *teamTargetsRepository) SaveOrUpdate(team string, targets domain.TeamTargets) error {
	query := squirrel.StatementBuilder.
		Insert(teamTargetsTable).
		Columns("team", "revenue_target", "collection_target", "utilization_target_hours", "profitability_target_pct").
		Values(
			team,
			targets.RevenueTarget,
			targets.CollectionTarget,
			targets.UtilizationTargetHours,
			targets.ProfitabilityTargetPct,
		).
		Suffix(`
			ON CONFLICT (team) DO UPDATE SET
				revenue_target = EXCLUDED.revenue_target,
				collection_target = EXCLUDED.collection_target,
				utilization_target_hours = EXCLUDED.utilization_target_hours,
				profitability_target_pct = EXCLUDED.profitability_target_pct,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building team targets upsert: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing team targets upsert: %w", err)
	}

	return nil
}

func (r *teamTargetsRepository) Delete(team string) error {
	query, args, err := squirrel.
		Delete(teamTargetsTable).
		Where(squirrel.Eq{"team": team}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building team targets delete: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("executing team targets delete: %w", err)
	}

	return nil
}
