/*
Package sqlmodel builds SELECT and UPDATE statements as SQL text from chained calls.

Quoting is delegated to an Adapter (PostgresAdapter, SQLiteAdapter, MySQLAdapter),
values are inlined as literals escaped by that Adapter.

Usage

Example:

	package main

	import (
		"fmt"

		"github.com/gildas/go-logger"
		"github.com/gildas/go-sqlmodel"
	)

	func main() {
		adapter := sqlmodel.Must(sqlmodel.AdapterFor("postgres"))

		statement := sqlmodel.NewSelectModel(adapter).With(logger.Create("MYAPP")).
			Select("id", sqlmodel.C("name"), sqlmodel.Raw("COUNT(*)")).
			From("person").
			Where(sqlmodel.C("age").Gt(18)).
			Quote(func(model *sqlmodel.SelectModel) {
				model.Where(sqlmodel.C("lastname").Eq("Doe")).OrWhere(sqlmodel.C("lastname").Eq("Smith"))
			}).
			GroupBy("id", "name").
			OrderBy(sqlmodel.C("name").Desc()).
			Page(2, 20)

		fmt.Println(statement)
		// SELECT "id", "name", COUNT(*) FROM person WHERE "age" > 18 AND ("lastname" = 'Doe' OR "lastname" = 'Smith') GROUP BY "id", "name" ORDER BY "name" DESC LIMIT 20 OFFSET 20

		update := sqlmodel.NewUpdateModel(adapter).
			Update("person").
			Set("lastname", "O'Hara").
			Set("age", 30).
			Where(sqlmodel.C("id").Eq(1))

		fmt.Println(update)
		// UPDATE "person" SET "lastname" = 'O''Hara', "age" = 30 WHERE "id" = 1
	}

Strings given to Where, AndWhere, OrWhere and Having are raw SQL and are not escaped. DON'T put user input there,
use C(column) with Eq, Gt, In, etc. so values go through the Adapter.

Builders never fail. A statement without columns, table or assignments renders as invalid SQL (e.g. "SELECT  FROM "),
and so does In or NotIn without values ("IN ()"). Check your input before rendering.

Statements are not safe for concurrent use, Adapters are.
*/
package sqlmodel
