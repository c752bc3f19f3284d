package checks

import (
	"context"
	"fmt"

	"quotes-lake/feature/lake"

	"go.uber.org/zap"
)

// LayoutProvisioner inspects and repairs the object store layout.
type LayoutProvisioner interface {
	Status(ctx context.Context) (*lake.StructureReport, error)
	EnsureLayout(ctx context.Context) error
}

// StorageReport is the result of a storage structure check.
type StorageReport struct {
	Status         string   `json:"status"` // "ok", "missing", "fixed"
	MissingBuckets []string `json:"missing_buckets"`
	MissingFolders []string `json:"missing_folders"`
	Fixed          []string `json:"fixed,omitempty"`
}

// CheckStorage lists the buckets and folders of the layout missing from the object store.
func CheckStorage(ctx context.Context, p LayoutProvisioner) (*StorageReport, error) {
	status, err := p.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check storage structure: %w", err)
	}

	report := &StorageReport{
		Status:         "ok",
		MissingBuckets: status.MissingBuckets,
		MissingFolders: status.MissingFolders,
	}
	if !status.OK() {
		report.Status = "missing"
	}
	return report, nil
}

// FixStorage provisions what CheckStorage reported missing and checks again.
func FixStorage(ctx context.Context, p LayoutProvisioner, logger *zap.Logger) (*StorageReport, error) {
	before, err := CheckStorage(ctx, p)
	if err != nil {
		return nil, err
	}
	if before.Status == "ok" {
		return before, nil
	}

	logger.Info("Provisioning missing storage structure",
		zap.Strings("buckets", before.MissingBuckets),
		zap.Strings("folders", before.MissingFolders))
	if err := p.EnsureLayout(ctx); err != nil {
		return nil, fmt.Errorf("failed to fix storage structure: %w", err)
	}

	after, err := CheckStorage(ctx, p)
	if err != nil {
		return nil, err
	}
	if after.Status == "ok" {
		after.Status = "fixed"
	}
	after.Fixed = append(append([]string{}, before.MissingBuckets...), before.MissingFolders...)
	return after, nil
}
