package materialize

import (
	"github.com/arthur-debert/skaff/pkg/logging"
	"github.com/arthur-debert/skaff/pkg/types"
)

// journal tracks exactly the filesystem entries one Materialize call
// created, in creation order. Rollback removes them in reverse so
// children go before their parents. Entries that existed before the call
// are never recorded and therefore never removed.
//
// The created set is tracked explicitly rather than inferred by diffing
// the filesystem: a diff cannot distinguish "created by this call" from
// "pre-existing".
type journal struct {
	fs      types.FS
	created []string
}

func newJournal(fs types.FS) *journal {
	return &journal{fs: fs}
}

// record notes an absolute path as created by this call.
func (j *journal) record(path string) {
	j.created = append(j.created, path)
}

// rollback removes every recorded entry in reverse creation order.
// Removal is best-effort; failures are logged and do not stop the sweep.
func (j *journal) rollback() {
	log := logging.GetLogger("materialize.rollback")
	for i := len(j.created) - 1; i >= 0; i-- {
		path := j.created[i]
		if err := j.fs.Remove(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Failed to remove created entry during rollback")
			continue
		}
		log.Debug().Str("path", path).Msg("Rolled back created entry")
	}
	j.created = nil
}
