// Package zonelock orchestrates zone lock operations: single-zone control,
// sequential batch control over every zone on the grid, and status reporting.
package zonelock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"nioslock-cli/internal/wapi"
)

// ZoneAPI is the subset of the WAPI client the manager drives.
type ZoneAPI interface {
	QueryZones(ctx context.Context, fqdn string) ([]wapi.Zone, error)
	LockZone(ctx context.Context, fqdn, ref string) error
	UnlockZone(ctx context.Context, fqdn, ref string) error
}

// ControlOptions selects the target zone and the intended lock transition.
// When both Lock and Unlock are requested, unlock wins.
type ControlOptions struct {
	FQDN   string
	Ref    string
	Lock   bool
	Unlock bool
}

// Manager drives lock transitions and reporting through a zone API client.
// Processing is strictly sequential; the manager holds no zone state of its
// own, the grid is the sole source of truth.
type Manager struct {
	client ZoneAPI
	logger *slog.Logger
	out    io.Writer
}

// NewManager wires a manager to a client. Report lines go to out (stdout
// when nil).
func NewManager(client ZoneAPI, logger *slog.Logger, out io.Writer) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Manager{client: client, logger: logger, out: out}
}

// ReportStatus prints one line per matching zone (all zones when fqdn is
// empty) and returns the records for further inspection.
func (m *Manager) ReportStatus(ctx context.Context, fqdn string) ([]wapi.Zone, error) {
	m.logger.Info("retrieving zone data")
	zones, err := m.client.QueryZones(ctx, fqdn)
	if err != nil {
		m.logger.Error("failed to retrieve zone data", "error", err)
		return nil, err
	}
	if len(zones) == 0 {
		fmt.Fprintln(m.out, "No matching zones found.")
		return zones, nil
	}
	for _, zone := range zones {
		line := fmt.Sprintf("Zone: %s, Locked: %t", zone.FQDN, zone.Locked)
		if zone.Locked {
			line += fmt.Sprintf(", Locked by: %s", zone.LockedBy)
		}
		fmt.Fprintln(m.out, line)
	}
	return zones, nil
}

// ControlZone locks or unlocks a single zone identified by name or object
// reference. The current lock state is not checked first; the grid decides
// whether the transition is a no-op.
func (m *Manager) ControlZone(ctx context.Context, opts ControlOptions) error {
	lock, unlock := resolveIntent(opts.Lock, opts.Unlock)
	target := opts.FQDN
	if target == "" {
		target = opts.Ref
	}
	switch {
	case unlock:
		if err := m.client.UnlockZone(ctx, opts.FQDN, opts.Ref); err != nil {
			m.logger.Error("error unlocking zone", "zone", target, "error", err)
			return err
		}
		m.logger.Info("zone unlocked", "zone", target)
	case lock:
		if err := m.client.LockZone(ctx, opts.FQDN, opts.Ref); err != nil {
			m.logger.Error("error locking zone", "zone", target, "error", err)
			return err
		}
		m.logger.Info("zone locked", "zone", target)
	default:
		return errors.New("neither lock nor unlock requested")
	}
	return nil
}

// ProcessAll applies the requested transition to every zone on the grid,
// one zone at a time. Zones already in the desired state are skipped, so no
// redundant calls are issued. A failure on one zone is logged and does not
// stop the rest; each zone's status is reported after it is processed.
func (m *Manager) ProcessAll(ctx context.Context, opts ControlOptions) error {
	lock, unlock := resolveIntent(opts.Lock, opts.Unlock)

	zones, err := m.client.QueryZones(ctx, "")
	if err != nil {
		m.logger.Error("failed to retrieve zone data", "error", err)
		return err
	}

	for _, zone := range zones {
		switch {
		case lock && !zone.Locked:
			if err := m.client.LockZone(ctx, "", zone.Ref); err != nil {
				m.logger.Error("error locking zone", "zone", zone.FQDN, "error", err)
			} else {
				m.logger.Info("zone locked", "zone", zone.FQDN)
			}
		case unlock && zone.Locked:
			if err := m.client.UnlockZone(ctx, "", zone.Ref); err != nil {
				m.logger.Error("error unlocking zone", "zone", zone.FQDN, "error", err)
			} else {
				m.logger.Info("zone unlocked", "zone", zone.FQDN)
			}
		}
		if _, err := m.ReportStatus(ctx, zone.FQDN); err != nil {
			m.logger.Error("status report failed", "zone", zone.FQDN, "error", err)
		}
	}
	return nil
}

// resolveIntent applies the unlock-wins rule.
func resolveIntent(lock, unlock bool) (bool, bool) {
	if lock && unlock {
		lock = false
	}
	return lock, unlock
}
