package function

import (
	"github.com/grovedb/go-sql-format/sql"
)

// Defaults is the function map with all the default functions.
var Defaults = sql.Functions{
	"format": sql.FunctionN(NewFormat),
}
