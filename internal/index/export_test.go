package index

import "context"

// ForceSchemaVersion overwrites the stored schema version for tests.
func (s *Store) ForceSchemaVersion(ctx context.Context, version int) error {
	_, err := s.db.ExecContext(ctx, "UPDATE schema_version SET version = ?", version)
	return err
}
