package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"propscore/internal/model"
	"propscore/internal/utils"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// listingColumns are read for every candidate. Table layout:
//
//	listings(id, title, city, property_type, latitude, longitude,
//	         surface_m2, monthly_rent, roof_surface_m2, parking_surface_m2,
//	         parking_spots, roof_orientation, energy_class, accessible,
//	         air_conditioning, status, created_at)
const listingColumns = `
	id, title, city, property_type, latitude, longitude,
	surface_m2, monthly_rent, roof_surface_m2, parking_surface_m2,
	parking_spots, roof_orientation, energy_class,
	accessible, air_conditioning, created_at`

// statusActive is the only listing status offered to search
const statusActive = "active"

// PostgresRepository handles database operations
type PostgresRepository struct {
	db *sqlx.DB
}

// connectDB opens and pings the pool; replaced in tests
var connectDB = sqlx.Connect

// NewPostgresRepository creates a new PostgreSQL repository.
// The DSN is handed to lib/pq unchanged.
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := connectDB("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute) // Shorter lifetime to avoid stale connections
	db.SetConnMaxIdleTime(2 * time.Minute) // Close idle connections sooner

	return NewPostgresRepositoryFromDB(db), nil
}

// NewPostgresRepositoryFromDB wraps an existing connection pool
func NewPostgresRepositoryFromDB(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Close closes the database connection
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// Ping checks database connectivity
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// listingRow mirrors a listings row before vocabulary normalization
type listingRow struct {
	ID               int64           `db:"id"`
	Title            sql.NullString  `db:"title"`
	City             sql.NullString  `db:"city"`
	PropertyType     sql.NullString  `db:"property_type"`
	Latitude         sql.NullFloat64 `db:"latitude"`
	Longitude        sql.NullFloat64 `db:"longitude"`
	SurfaceM2        sql.NullFloat64 `db:"surface_m2"`
	MonthlyRent      sql.NullFloat64 `db:"monthly_rent"`
	RoofSurfaceM2    sql.NullFloat64 `db:"roof_surface_m2"`
	ParkingSurfaceM2 sql.NullFloat64 `db:"parking_surface_m2"`
	ParkingSpots     sql.NullInt64   `db:"parking_spots"`
	RoofOrientation  sql.NullString  `db:"roof_orientation"`
	EnergyClass      sql.NullString  `db:"energy_class"`
	Accessible       sql.NullBool    `db:"accessible"`
	AirConditioning  sql.NullBool    `db:"air_conditioning"`
	CreatedAt        time.Time       `db:"created_at"`
}

// toListing converts a row, mapping unrecognized enum spellings to unknown
func (row listingRow) toListing() model.Listing {
	listing := model.Listing{
		ID:               row.ID,
		Title:            row.Title.String,
		City:             row.City.String,
		Latitude:         nullFloat(row.Latitude),
		Longitude:        nullFloat(row.Longitude),
		SurfaceM2:        nullFloat(row.SurfaceM2),
		MonthlyRent:      nullFloat(row.MonthlyRent),
		RoofSurfaceM2:    nullFloat(row.RoofSurfaceM2),
		ParkingSurfaceM2: nullFloat(row.ParkingSurfaceM2),
		Accessible:       row.Accessible.Valid && row.Accessible.Bool,
		AirConditioning:  row.AirConditioning.Valid && row.AirConditioning.Bool,
		CreatedAt:        row.CreatedAt,
	}

	if row.ParkingSpots.Valid {
		spots := int(row.ParkingSpots.Int64)
		listing.ParkingSpots = &spots
	}
	if t, ok := utils.ParsePropertyType(row.PropertyType.String); ok {
		listing.PropertyType = t
	}
	listing.RoofOrientation, _ = utils.ParseOrientation(row.RoofOrientation.String)
	listing.EnergyClass, _ = utils.ParseEnergyClass(row.EnergyClass.String)

	return listing
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

// normalizedTypeColumn folds property_type the way utils.ParsePropertyType
// normalizes input: trim, lowercase, fold separators and accents, collapse dashes.
var normalizedTypeColumn = fmt.Sprintf(
	`regexp_replace(translate(lower(btrim(property_type)), '%s', '%s'), '-+', '-', 'g')`,
	utils.TermFoldFrom, utils.TermFoldTo,
)

// likeEscaper makes user input match literally inside an ILIKE pattern
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// buildCandidateQuery builds the coarse-filter query for candidates
func buildCandidateQuery(filter model.CandidateFilter) (string, []interface{}) {
	// Build WHERE clause
	whereClauses := []string{"status = $1"}
	args := []interface{}{statusActive}
	argIndex := 2

	if len(filter.Types) > 0 {
		// Match every spelling toListing would accept for the requested types
		whereClauses = append(whereClauses, fmt.Sprintf("%s = ANY($%d)", normalizedTypeColumn, argIndex))
		args = append(args, pq.Array(utils.PropertyTypeAliases(filter.Types...)))
		argIndex++
	}
	if filter.City != nil && strings.TrimSpace(*filter.City) != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("city ILIKE $%d", argIndex))
		args = append(args, "%"+escapeLike(strings.TrimSpace(*filter.City))+"%")
		argIndex++
	}
	if filter.Box != nil {
		// Listings without coordinates stay candidates; proximity scores them neutrally
		whereClauses = append(whereClauses, fmt.Sprintf(
			"(latitude IS NULL OR longitude IS NULL OR (latitude BETWEEN $%d AND $%d AND longitude BETWEEN $%d AND $%d))",
			argIndex, argIndex+1, argIndex+2, argIndex+3,
		))
		args = append(args, filter.Box.MinLat, filter.Box.MaxLat, filter.Box.MinLng, filter.Box.MaxLng)
		argIndex += 4
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM listings
		WHERE %s
		ORDER BY created_at DESC, id
		LIMIT $%d
	`, listingColumns, strings.Join(whereClauses, " AND "), argIndex)

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultCandidateLimit
	}
	args = append(args, limit)

	return query, args
}

// defaultCandidateLimit caps candidates when the filter carries no limit
const defaultCandidateLimit = 200

// ListCandidates returns active listings passing the coarse filters
func (r *PostgresRepository) ListCandidates(ctx context.Context, filter model.CandidateFilter) ([]model.Listing, error) {
	query, args := buildCandidateQuery(filter)

	var rows []listingRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch candidates: %w", err)
	}

	listings := make([]model.Listing, len(rows))
	for i, row := range rows {
		listings[i] = row.toListing()
	}
	return listings, nil
}

// GetListing retrieves a single active listing by its ID
func (r *PostgresRepository) GetListing(ctx context.Context, listingID int64) (*model.Listing, error) {
	var row listingRow
	query := fmt.Sprintf(`
		SELECT %s
		FROM listings
		WHERE id = $1 AND status = $2
	`, listingColumns)
	err := r.db.GetContext(ctx, &row, query, listingID, statusActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	listing := row.toListing()
	return &listing, nil
}
