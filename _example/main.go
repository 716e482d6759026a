package main

import (
	"github.com/sirupsen/logrus"

	sqlformat "github.com/grovedb/go-sql-format"
	"github.com/grovedb/go-sql-format/mem"
	"github.com/grovedb/go-sql-format/sql"
	"github.com/grovedb/go-sql-format/sql/expression"
	"github.com/grovedb/go-sql-format/sql/expression/function"
)

// Example of evaluating FORMAT over a generated number sequence:
//
// ```
// > go run main.go
// format(number, number) = 0
// format(number, number) = 1.0
// format(number, number) = 2.00
// ```
func main() {
	formatter := sqlformat.New()
	ctx := sql.NewEmptyContext()

	numbers := mem.NewNumberSequence("numbers", 3)
	iter, err := numbers.RowIter(ctx)
	if err != nil {
		logrus.Fatal(err)
	}

	number := expression.NewGetField(0, sql.Int64, "number", false)
	e, err := function.NewFormat(number, number)
	if err != nil {
		logrus.Fatal(err)
	}

	rows, err := formatter.Project(ctx, []sql.Expression{e}, iter)
	if err != nil {
		logrus.Fatal(err)
	}

	for _, row := range rows {
		logrus.Infof("%s = %v", e, row[0])
	}
}
