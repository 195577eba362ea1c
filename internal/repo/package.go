package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/respite-booking/backend/internal/domain"
)

// PackageRepo defines the persistence operations for accommodation packages
// and their line items.
type PackageRepo interface {
	// Create inserts a package and its line items and returns the persisted
	// record. Line item order is kept via their position.
	Create(ctx context.Context, pkg domain.Package) (domain.Package, error)

	// GetByID retrieves a package with its line items.
	// Returns domain.ErrNotFound if no package with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Package, error)

	// GetByCode retrieves a package by its unique code.
	// Returns domain.ErrNotFound if no package with that code exists.
	GetByCode(ctx context.Context, code string) (domain.Package, error)

	// ListPaged returns one page of packages ordered by code, with line items,
	// plus the total package count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Package, int64, error)
}

// pgPackageRepo is the Postgres implementation of PackageRepo.
type pgPackageRepo struct {
	db db
}

// NewPackageRepo constructs a PackageRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPackageRepo(db db) PackageRepo {
	return &pgPackageRepo{db: db}
}

const packageColumns = `id, code, name, funder, family, custom_quote, static_code, created_at`

// Create inserts the package row, then each line item in order.
func (r *pgPackageRepo) Create(ctx context.Context, pkg domain.Package) (domain.Package, error) {
	const q = `
		INSERT INTO packages (code, name, funder, family, custom_quote, static_code)
		VALUES (@code, @name, @funder, @family, @custom_quote, @static_code)
		RETURNING ` + packageColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"code":         pkg.Code,
		"name":         pkg.Name,
		"funder":       string(pkg.Funder),
		"family":       pkg.Family,
		"custom_quote": pkg.CustomQuote,
		"static_code":  string(pkg.StaticCode),
	})
	created, err := scanPackage(row)
	if err != nil {
		return domain.Package{}, fmt.Errorf("repo.PackageRepo.Create: %w", err)
	}

	const qi = `
		INSERT INTO package_line_items
			(package_id, position, line_item_type, rate_type, rate_category, care_time,
			 price_per_unit, code, description, funding_label)
		VALUES
			(@package_id, @position, @line_item_type, @rate_type, @rate_category, @care_time,
			 @price_per_unit, @code, @description, @funding_label)
		RETURNING id`

	created.LineItems = make([]domain.PackageLineItem, 0, len(pkg.LineItems))
	for i, item := range pkg.LineItems {
		var id pgtype.UUID
		err := r.db.QueryRow(ctx, qi, pgx.NamedArgs{
			"package_id":     created.ID,
			"position":       i,
			"line_item_type": string(item.Type),
			"rate_type":      string(item.RateType),
			"rate_category":  string(item.RateCategory),
			"care_time":      string(item.CareTime),
			"price_per_unit": item.PricePerUnit,
			"code":           item.Code,
			"description":    item.Description,
			"funding_label":  item.FundingLabel,
		}).Scan(&id)
		if err != nil {
			return domain.Package{}, fmt.Errorf("repo.PackageRepo.Create: line item %d: %w", i, err)
		}
		item.ID = uuid.UUID(id.Bytes)
		created.LineItems = append(created.LineItems, item)
	}
	return created, nil
}

// GetByID retrieves a package by primary key.
func (r *pgPackageRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Package, error) {
	const q = `SELECT ` + packageColumns + ` FROM packages WHERE id = @id`

	pkg, err := scanPackage(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Package{}, fmt.Errorf("repo.PackageRepo.GetByID: %w", err)
	}
	if err := r.attachLineItems(ctx, []*domain.Package{&pkg}); err != nil {
		return domain.Package{}, fmt.Errorf("repo.PackageRepo.GetByID: %w", err)
	}
	return pkg, nil
}

// GetByCode retrieves a package by its unique code.
func (r *pgPackageRepo) GetByCode(ctx context.Context, code string) (domain.Package, error) {
	const q = `SELECT ` + packageColumns + ` FROM packages WHERE code = @code`

	pkg, err := scanPackage(r.db.QueryRow(ctx, q, pgx.NamedArgs{"code": code}))
	if err != nil {
		return domain.Package{}, fmt.Errorf("repo.PackageRepo.GetByCode: %w", err)
	}
	if err := r.attachLineItems(ctx, []*domain.Package{&pkg}); err != nil {
		return domain.Package{}, fmt.Errorf("repo.PackageRepo.GetByCode: %w", err)
	}
	return pkg, nil
}

// ListPaged returns a page of packages ordered by code and the total count.
func (r *pgPackageRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Package, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM packages`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.PackageRepo.ListPaged: count: %w", err)
	}

	const q = `
		SELECT ` + packageColumns + `
		FROM packages
		ORDER BY code
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.PackageRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var pkgs []domain.Package
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.PackageRepo.ListPaged: scan: %w", err)
		}
		pkgs = append(pkgs, pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.PackageRepo.ListPaged: rows: %w", err)
	}
	rows.Close()

	ptrs := make([]*domain.Package, len(pkgs))
	for i := range pkgs {
		ptrs[i] = &pkgs[i]
	}
	if err := r.attachLineItems(ctx, ptrs); err != nil {
		return nil, 0, fmt.Errorf("repo.PackageRepo.ListPaged: %w", err)
	}
	return pkgs, total, nil
}

// attachLineItems loads the line items of every package in one query.
func (r *pgPackageRepo) attachLineItems(ctx context.Context, pkgs []*domain.Package) error {
	if len(pkgs) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(pkgs))
	byID := make(map[uuid.UUID]*domain.Package, len(pkgs))
	for i, p := range pkgs {
		ids[i] = p.ID
		byID[p.ID] = p
		p.LineItems = []domain.PackageLineItem{}
	}

	const q = `
		SELECT id, package_id, line_item_type, rate_type, rate_category, care_time,
		       price_per_unit, code, description, funding_label
		FROM package_line_items
		WHERE package_id = ANY(@ids)
		ORDER BY package_id, position`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"ids": ids})
	if err != nil {
		return fmt.Errorf("line items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, packageID                              pgtype.UUID
			itemType, rateType, rateCategory, careTime string
			item                                       domain.PackageLineItem
		)
		err := rows.Scan(&id, &packageID, &itemType, &rateType, &rateCategory, &careTime,
			&item.PricePerUnit, &item.Code, &item.Description, &item.FundingLabel)
		if err != nil {
			return fmt.Errorf("line items: scan: %w", err)
		}
		item.ID = uuid.UUID(id.Bytes)
		item.Type = domain.LineItemType(itemType)
		item.RateType = domain.RateType(rateType)
		item.RateCategory = domain.RateCategory(rateCategory)
		item.CareTime = domain.CareTime(careTime)
		if p, ok := byID[uuid.UUID(packageID.Bytes)]; ok {
			p.LineItems = append(p.LineItems, item)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("line items: rows: %w", err)
	}
	return nil
}

// scanPackage maps a single packages row into a domain.Package.
func scanPackage(s scanner) (domain.Package, error) {
	var (
		p                  domain.Package
		id                 pgtype.UUID
		funder, staticCode string
	)

	err := s.Scan(&id, &p.Code, &p.Name, &funder, &p.Family, &p.CustomQuote, &staticCode, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Package{}, domain.ErrNotFound
		}
		return domain.Package{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.Funder = domain.Funder(funder)
	p.StaticCode = domain.StaticPackageCode(staticCode)
	return p, nil
}
