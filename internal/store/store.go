package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"manufac-asset-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	CreateMachine(ctx context.Context, m *model.Machine) error
	GetMachine(ctx context.Context, id uint) (model.Machine, error)
	ListMachines(ctx context.Context) ([]model.Machine, error)
	UpdateMachineStatus(ctx context.Context, id uint, status model.MachineStatus) error

	CreateProduct(ctx context.Context, p *model.Product) error
	ListProducts(ctx context.Context) ([]model.Product, error)

	CreateProductionRun(ctx context.Context, r *model.ProductionRun) error
	ListProductionRuns(ctx context.Context) ([]model.ProductionRun, error)
	ProductionRunsForMachine(ctx context.Context, machineID uint) ([]model.ProductionRun, error)

	MachineSummaries(ctx context.Context) ([]MachineSummary, error)

	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// DB exposes the underlying gorm handle for handlers that need association queries.
func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// CreateMachine persists a new machine, defaulting LastMaintenance to now.
func (s *gormStore) CreateMachine(ctx context.Context, m *model.Machine) error {
	if m.LastMaintenance.IsZero() {
		m.LastMaintenance = time.Now().UTC()
	}
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("failed to create machine: %w", err)
	}
	return nil
}

func (s *gormStore) GetMachine(ctx context.Context, id uint) (model.Machine, error) {
	var m model.Machine
	err := s.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Machine{}, ErrMachineNotFound
	}
	if err != nil {
		return model.Machine{}, fmt.Errorf("failed to fetch machine %d: %w", id, err)
	}
	return m, nil
}

func (s *gormStore) ListMachines(ctx context.Context) ([]model.Machine, error) {
	var machines []model.Machine
	if err := s.db.WithContext(ctx).Order("id").Find(&machines).Error; err != nil {
		return nil, fmt.Errorf("failed to list machines: %w", err)
	}
	return machines, nil
}

// UpdateMachineStatus persists a status change. This is the only in-place machine
// mutation in the system; the monitoring loop terminates by observing it.
func (s *gormStore) UpdateMachineStatus(ctx context.Context, id uint, status model.MachineStatus) error {
	res := s.db.WithContext(ctx).
		Model(&model.Machine{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update status for machine %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrMachineNotFound
	}
	return nil
}

func (s *gormStore) CreateProduct(ctx context.Context, p *model.Product) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (s *gormStore) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := s.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *gormStore) CreateProductionRun(ctx context.Context, r *model.ProductionRun) error {
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return fmt.Errorf("failed to create production run: %w", err)
	}
	return nil
}

func (s *gormStore) ListProductionRuns(ctx context.Context) ([]model.ProductionRun, error) {
	var runs []model.ProductionRun
	if err := s.db.WithContext(ctx).Order("id").Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list production runs: %w", err)
	}
	return runs, nil
}

func (s *gormStore) ProductionRunsForMachine(ctx context.Context, machineID uint) ([]model.ProductionRun, error) {
	var runs []model.ProductionRun
	if err := s.db.WithContext(ctx).
		Where("machine_id = ?", machineID).
		Order("id").
		Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list production runs for machine %d: %w", machineID, err)
	}
	return runs, nil
}

// MachineSummaries aggregates lifetime run time and production quantity per machine.
// Every sample row counts: a session contributes all of its intermediate samples to
// the totals, matching the append-only row model.
func (s *gormStore) MachineSummaries(ctx context.Context) ([]MachineSummary, error) {
	machines, err := s.ListMachines(ctx)
	if err != nil {
		return nil, err
	}

	type aggRow struct {
		MachineID     uint
		TotalRunTime  float64
		TotalQuantity int64
	}
	var aggs []aggRow
	if err := s.db.WithContext(ctx).
		Model(&model.ProductionRun{}).
		Select("machine_id as machine_id, COALESCE(SUM(run_time), 0) as total_run_time, COALESCE(SUM(production_quantity), 0) as total_quantity").
		Group("machine_id").
		Scan(&aggs).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate production runs: %w", err)
	}

	aggMap := make(map[uint]aggRow, len(aggs))
	for _, a := range aggs {
		aggMap[a.MachineID] = a
	}

	summaries := make([]MachineSummary, 0, len(machines))
	for _, m := range machines {
		a := aggMap[m.ID] // zero value when the machine has no runs
		summaries = append(summaries, MachineSummary{
			MachineID:     m.ID,
			MachineName:   m.Name,
			TotalRunTime:  a.TotalRunTime,
			TotalQuantity: a.TotalQuantity,
		})
	}
	return summaries, nil
}
