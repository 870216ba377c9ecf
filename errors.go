package gridview

import "errors"

// Standard errors returned by the engine
var (
	// ErrNoStore indicates the grid was built without a row store
	ErrNoStore = errors.New("gridview: no row store configured")

	// ErrNoColumns indicates the grid was built without column definitions
	ErrNoColumns = errors.New("gridview: no columns configured")

	// ErrDuplicateColumn indicates two columns share an identifier
	ErrDuplicateColumn = errors.New("gridview: duplicate column id")

	// ErrUnknownColumn indicates a reference to a column id the grid does not know
	ErrUnknownColumn = errors.New("gridview: unknown column id")

	// ErrNoEditSession indicates an edit operation without an active session
	ErrNoEditSession = errors.New("gridview: no active edit session")

	// ErrRowNotEditable indicates an attempt to edit a row with no editable fields
	ErrRowNotEditable = errors.New("gridview: row has no editable fields")

	// ErrUnsupportedFormat indicates an unsupported export format
	ErrUnsupportedFormat = errors.New("gridview: unsupported export format")

	// ErrUnsupportedCompression indicates an unsupported export compression type
	ErrUnsupportedCompression = errors.New("gridview: unsupported compression type")
)
