package sqlmodel_test

import (
	"fmt"
	"math"
	"os"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gildas/go-logger"
	"github.com/gildas/go-sqlmodel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AdapterSuite struct {
	suite.Suite
	Name   string
	Logger *logger.Logger
	Start  time.Time
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterSuite))
}

func (suite *AdapterSuite) TestCanFindAdapterForDriver() {
	adapter, err := sqlmodel.AdapterFor("postgres")
	suite.Require().Nil(err)
	suite.Assert().IsType(sqlmodel.PostgresAdapter{}, adapter)

	adapter, err = sqlmodel.AdapterFor("pgx")
	suite.Require().Nil(err)
	suite.Assert().IsType(sqlmodel.PostgresAdapter{}, adapter)

	adapter, err = sqlmodel.AdapterFor("sqlite3")
	suite.Require().Nil(err)
	suite.Assert().IsType(sqlmodel.SQLiteAdapter{}, adapter)

	adapter, err = sqlmodel.AdapterFor(" MySQL ")
	suite.Require().Nil(err)
	suite.Assert().IsType(sqlmodel.MySQLAdapter{}, adapter)
}

func (suite *AdapterSuite) TestFailsWithUnknownDriver() {
	adapter, err := sqlmodel.AdapterFor("oracle")
	suite.Assert().NotNil(err)
	suite.Assert().Nil(adapter)
	suite.Logger.Errorf("Expected error: %s", err)

	suite.Assert().Panics(func() {
		_ = sqlmodel.Must(sqlmodel.AdapterFor("oracle"))
	})
	suite.Assert().NotPanics(func() {
		_ = sqlmodel.Must(sqlmodel.AdapterFor("sqlite"))
	})
}

func (suite *AdapterSuite) TestCanQuoteFields() {
	suite.Assert().Equal(`"person"`, sqlmodel.PostgresAdapter{}.QuoteField("person"))
	suite.Assert().Equal(`"per""son"`, sqlmodel.PostgresAdapter{}.QuoteField(`per"son`))
	suite.Assert().Equal(`"per""son"`, sqlmodel.SQLiteAdapter{}.QuoteField(`per"son`))
	suite.Assert().Equal("`per``son`", sqlmodel.MySQLAdapter{}.QuoteField("per`son"))
}

func (suite *AdapterSuite) TestCanQuoteStrings() {
	suite.Assert().Equal(`'Doe'`, sqlmodel.SQLiteAdapter{}.QuoteValue("Doe"))
	suite.Assert().Equal(`'O''Hara'`, sqlmodel.PostgresAdapter{}.QuoteValue("O'Hara"))
	suite.Assert().Equal(`'x''; DROP TABLE person; --'`, sqlmodel.PostgresAdapter{}.QuoteValue("x'; DROP TABLE person; --"))
	suite.Assert().Equal(`'a\b'`, sqlmodel.PostgresAdapter{}.QuoteValue(`a\b`))
	suite.Assert().Equal(`'a\\b'`, sqlmodel.MySQLAdapter{}.QuoteValue(`a\b`))
	suite.Assert().Equal(`'bytes'`, sqlmodel.SQLiteAdapter{}.QuoteValue([]byte("bytes")))
}

func (suite *AdapterSuite) TestCanQuoteScalars() {
	adapter := sqlmodel.SQLiteAdapter{}
	suite.Assert().Equal("NULL", adapter.QuoteValue(nil))
	suite.Assert().Equal("TRUE", adapter.QuoteValue(true))
	suite.Assert().Equal("FALSE", adapter.QuoteValue(false))
	suite.Assert().Equal("42", adapter.QuoteValue(42))
	suite.Assert().Equal("-2", adapter.QuoteValue(int64(-2)))
	suite.Assert().Equal("7", adapter.QuoteValue(uint8(7)))
	suite.Assert().Equal("3.1415", adapter.QuoteValue(3.1415))
	suite.Assert().Equal("0.5", adapter.QuoteValue(float32(0.5)))
	suite.Assert().Equal("1000000000000000000000", adapter.QuoteValue(1e21))
	suite.Assert().Equal("NULL", adapter.QuoteValue(math.NaN()))
	suite.Assert().Equal("NULL", adapter.QuoteValue(math.Inf(1)))
	suite.Assert().Equal("120000000000", adapter.QuoteValue(2*time.Minute))
}

func (suite *AdapterSuite) TestCanQuoteOtherTypes() {
	type level int
	type label string
	adapter := sqlmodel.SQLiteAdapter{}
	id := uuid.MustParse("6f1a2b3c-4d5e-4f60-8a7b-9c0d1e2f3a4b")
	stamp := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	pointy := int64(12)
	var missing *int64

	suite.Assert().Equal("'6f1a2b3c-4d5e-4f60-8a7b-9c0d1e2f3a4b'", adapter.QuoteValue(id))
	suite.Assert().Equal("'2020-01-02 03:04:05+00:00'", adapter.QuoteValue(stamp))
	suite.Assert().Equal("NULL", adapter.QuoteValue((*time.Time)(nil)))
	suite.Assert().Equal("'2020-01-02 03:04:05+00:00'", adapter.QuoteValue(&stamp))
	suite.Assert().Equal("12", adapter.QuoteValue(&pointy))
	suite.Assert().Equal("NULL", adapter.QuoteValue(missing))
	suite.Assert().Equal("3", adapter.QuoteValue(level(3)))
	suite.Assert().Equal("'it''s'", adapter.QuoteValue(label("it's")))
	suite.Assert().Equal("'[1 2]'", adapter.QuoteValue([]int{1, 2}))
}

// Suite Tools

func (suite *AdapterSuite) SetupSuite() {
	suite.Name = strings.TrimSuffix(reflect.TypeOf(suite).Elem().Name(), "Suite")
	_ = os.MkdirAll("./log", 0755)
	suite.Logger = logger.Create("test",
		&logger.FileStream{
			Path:        fmt.Sprintf("./log/test-%s.log", strings.ToLower(suite.Name)),
			Unbuffered:  true,
			FilterLevel: logger.TRACE,
		},
	).Child("test", "test")
	suite.Logger.Infof("Suite Start: %s %s", suite.Name, strings.Repeat("=", 80-14-len(suite.Name)))
}

func (suite *AdapterSuite) TearDownSuite() {
	if suite.T().Failed() {
		suite.Logger.Warnf("At least one test failed, we are not cleaning")
		suite.T().Log("At least one test failed, we are not cleaning")
	} else {
		suite.Logger.Infof("All tests succeeded, we are cleaning")
	}
	suite.Logger.Infof("Suite End: %s %s", suite.Name, strings.Repeat("=", 80-12-len(suite.Name)))
}

func (suite *AdapterSuite) BeforeTest(suiteName, testName string) {
	suite.Logger.Infof("Test Start: %s %s", testName, strings.Repeat("-", 80-13-len(testName)))
	suite.Start = time.Now()
}

func (suite *AdapterSuite) AfterTest(suiteName, testName string) {
	duration := time.Since(suite.Start)
	suite.Logger.Record("duration", duration.String()).Infof("Test End: %s %s", testName, strings.Repeat("-", 80-11-len(testName)))
}
