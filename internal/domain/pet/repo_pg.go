package pet

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG creates the Postgres-backed pet repository.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const petCols = `id, owner_id, name, species, breed, gender, gender_status,
	birth_date, weight, color, microchip_number, insured,
	insurance_company, policy_number, passport_number,
	photo_url, photo_content_type, created_at, updated_at`

func scanPet(row pgx.Row) (*Pet, error) {
	var p Pet
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Species, &p.Breed, &p.Gender,
		&p.GenderStatus, &p.BirthDate, &p.Weight, &p.Color, &p.MicrochipNumber,
		&p.Insured, &p.InsuranceCompany, &p.PolicyNumber, &p.PassportNumber,
		&p.PhotoURL, &p.PhotoContentType, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Pet) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO pet (id, owner_id, name, species, breed, gender, gender_status,
			birth_date, weight, color, microchip_number, insured,
			insurance_company, policy_number, passport_number,
			photo_url, photo_content_type)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)`,
		p.ID, p.OwnerID, p.Name, p.Species, p.Breed, p.Gender, p.GenderStatus,
		p.BirthDate, p.Weight, p.Color, p.MicrochipNumber, p.Insured,
		p.InsuranceCompany, p.PolicyNumber, p.PassportNumber,
		p.PhotoURL, p.PhotoContentType)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id string) (*Pet, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+petCols+` FROM pet WHERE id = $1`, id)
	return scanPet(row)
}

func (r *repoPG) Update(ctx context.Context, p *Pet) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE pet SET owner_id=$2, name=$3, species=$4, breed=$5, gender=$6,
			gender_status=$7, birth_date=$8, weight=$9, color=$10,
			microchip_number=$11, insured=$12, insurance_company=$13,
			policy_number=$14, passport_number=$15, photo_url=$16,
			photo_content_type=$17, updated_at=now()
		WHERE id = $1`,
		p.ID, p.OwnerID, p.Name, p.Species, p.Breed, p.Gender, p.GenderStatus,
		p.BirthDate, p.Weight, p.Color, p.MicrochipNumber, p.Insured,
		p.InsuranceCompany, p.PolicyNumber, p.PassportNumber,
		p.PhotoURL, p.PhotoContentType)
	return err
}

func (r *repoPG) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM pet WHERE id = $1`, id)
	return err
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Pet, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM pet`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+petCols+` FROM pet ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectPets(rows, total)
}

func (r *repoPG) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]*Pet, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM pet WHERE owner_id = $1`, ownerID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+petCols+` FROM pet WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, ownerID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	return collectPets(rows, total)
}

func collectPets(rows pgx.Rows, total int) ([]*Pet, int, error) {
	var pets []*Pet
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, 0, err
		}
		pets = append(pets, p)
	}
	return pets, total, rows.Err()
}
