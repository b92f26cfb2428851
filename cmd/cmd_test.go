package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes c with args in an empty working directory, so that no
// configuration file is found, and returns what it printed.
func run(t *testing.T, c subcommands.Command, args ...string) (string, string, subcommands.ExitStatus) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	stdout, stderr = &out, &errOut
	now = func() time.Time { return time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() {
		stdout, stderr = os.Stdout, os.Stderr
		now = time.Now
	})

	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	status := c.Execute(context.Background(), fs)
	return out.String(), errOut.String(), status
}

func TestCalc_JSON(t *testing.T) {
	out, _, status := run(t, &calcCmd{}, "-name", "ACME", "-json", "10@2000", "5@1800")

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, `{"ok":true,"label":"ACME","result":{"currency":"INR","averagePrice":1933.3333333333333333,"totalShares":15,"totalInvestment":29000,"perEntryInvestment":[20000,9000]}}`+"\n", out)
}

func TestCalc_Query(t *testing.T) {
	testCases := []struct {
		query string
		args  []string
		want  string
	}{
		{"$.result.averagePrice", []string{"10@2000", "5@1800"}, "1933.3333333333333333\n"},
		{"$.result.totalShares", []string{"10@2000", "5@1800", "8@2200"}, "23\n"},
		{"$.result.perEntryInvestment[1]", []string{"10@2000", "5@1800"}, "9000\n"},
		{"$.label", []string{"10@2000", "5@1800"}, "\"ACME\"\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			args := append([]string{"-name", "ACME", "-q", tc.query}, tc.args...)
			out, _, status := run(t, &calcCmd{}, args...)
			assert.Equal(t, subcommands.ExitSuccess, status)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestCalc_JSONFailure(t *testing.T) {
	out, _, status := run(t, &calcCmd{}, "-name", "ACME", "-json", "10@2000", "0@1800")

	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Equal(t, `{"ok":false,"label":"ACME","failure":{"kind":"InvalidEntry","message":"all quantities and prices must be greater than zero (purchase 2)"}}`+"\n", out)
}

func TestCalc_Failures(t *testing.T) {
	testCases := []struct {
		name       string
		args       []string
		wantStatus subcommands.ExitStatus
		wantErr    string
	}{
		{
			name:       "missing name",
			args:       []string{"10@2000", "5@1800"},
			wantStatus: subcommands.ExitFailure,
			wantErr:    "Stock Name Required: Please enter a stock name before calculating.\n",
		},
		{
			name:       "zero quantity",
			args:       []string{"-name", "ACME", "0@2000", "5@1800"},
			wantStatus: subcommands.ExitFailure,
			wantErr:    "Invalid Input: All quantities and prices must be greater than zero.\n",
		},
		{
			name:       "single purchase",
			args:       []string{"-name", "ACME", "10@2000"},
			wantStatus: subcommands.ExitFailure,
			wantErr:    "Invalid Input: All quantities and prices must be greater than zero.\n",
		},
		{
			name:       "malformed purchase",
			args:       []string{"-name", "ACME", "ten@2000"},
			wantStatus: subcommands.ExitUsageError,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out, errOut, status := run(t, &calcCmd{}, tc.args...)
			assert.Equal(t, tc.wantStatus, status)
			assert.Empty(t, out)
			if tc.wantErr != "" {
				assert.Equal(t, tc.wantErr, errOut)
			}
		})
	}
}

func TestCalc_Summary(t *testing.T) {
	out, _, status := run(t, &calcCmd{}, "-name", "HDFC Bank", "10@2000", "5@1800")

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Stock Average Report: HDFC Bank")
	assert.Contains(t, out, "₹1,933.33")
	assert.Contains(t, out, "₹29,000.00")
}

func TestCalc_LedgerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acme.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"label":"ACME","currency":"USD","purchases":[{"quantity":10,"price":2000},{"quantity":5,"price":1800}]}`), 0o644))

	out, _, status := run(t, &calcCmd{}, "-l", path, "-q", "$.result.totalShares", "8@2200")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "23\n", out)

	out, _, status = run(t, &calcCmd{}, "-l", path, "-q", "$.result.currency")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "\"USD\"\n", out)

	_, _, status = run(t, &calcCmd{}, "-l", path, "-c", "EUR")
	assert.Equal(t, subcommands.ExitUsageError, status)

	out, _, status = run(t, &calcCmd{}, "-l", path, "-c", "usd", "-q", "$.result.currency")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "\"USD\"\n", out)
}

func TestCalc_CurrencyFlag(t *testing.T) {
	out, _, status := run(t, &calcCmd{}, "-name", "ACME", "-c", "eur", "-q", "$.result.currency", "10@2000", "5@1800")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "\"EUR\"\n", out)

	_, errOut, status := run(t, &calcCmd{}, "-name", "ACME", "-c", "XYZ", "10@2000", "5@1800")
	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Contains(t, errOut, "unknown currency")
}

func TestReport_Save(t *testing.T) {
	dir := t.TempDir()

	out, _, status := run(t, &reportCmd{}, "-name", "HDFC Bank", "-f", "xlsx", "-o", dir, "10@2000", "5@1800")

	assert.Equal(t, subcommands.ExitSuccess, status)
	path := filepath.Join(dir, "HDFC_Bank_Stock_Average_Report.xlsx")
	assert.Equal(t, "Download Started: Your report is being saved to "+path+".\n", out)
	assert.FileExists(t, path)
}

func TestReport_Print(t *testing.T) {
	out, _, status := run(t, &reportCmd{}, "-name", "ACME", "-print", "10@2000", "5@1800")

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Stock Average Report: ACME")
	assert.Contains(t, out, "₹1,933.33")
}

func TestReport_UnknownFormat(t *testing.T) {
	_, errOut, status := run(t, &reportCmd{}, "-name", "ACME", "-f", "pdf", "10@2000", "5@1800")

	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Contains(t, errOut, "unknown format")
}

func TestChart_JSON(t *testing.T) {
	out, _, status := run(t, &chartCmd{}, "-name", "ACME", "-json", "10@2000", "5@1800")

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, `"averagePriceLabel":"₹1,933.33"`)
	assert.Contains(t, out, `"percent":"69%"`)
	assert.Contains(t, out, `{"name":"Average","price":1933.3333333333333333,"priceLabel":"₹1,933.33"}`)
}

func TestChart_Terminal(t *testing.T) {
	out, _, status := run(t, &chartCmd{}, "-name", "ACME", "10@2000", "5@1800")

	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Price Comparison")
	assert.Contains(t, out, "Investment Distribution")
	assert.Contains(t, out, "Price Trend")
}

func TestEmail(t *testing.T) {
	out, errOut, status := run(t, &emailCmd{}, "-name", "ACME", "-to", "jane@example.com", "10@2000", "5@1800")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Equal(t, "Email Sent: Results have been sent to jane@example.com.\n", out)
	assert.Empty(t, errOut)

	out, errOut, status = run(t, &emailCmd{}, "-name", "ACME", "-to", "jane", "10@2000", "5@1800")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Empty(t, out)
	assert.Equal(t, "Invalid Email: Please enter a valid email address.\n", errOut)
}

func TestTopic(t *testing.T) {
	out, _, status := run(t, &topicCmd{}, "averaging")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Average")

	_, errOut, status := run(t, &topicCmd{}, "nope")
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Contains(t, errOut, `topic "nope" not found`)
}

func TestQuery(t *testing.T) {
	doc := []byte(`{"a":{"b":[1.10,2]},"c":"x"}`)

	got, err := query(doc, "$.a.b[0]")
	require.NoError(t, err)
	assert.Equal(t, "1.10", string(got))

	got, err = query(doc, "$.a.b")
	require.NoError(t, err)
	assert.Equal(t, "[1.10,2]", string(got))

	_, err = query(doc, "$.missing")
	assert.Error(t, err)
}

func TestCompletion(t *testing.T) {
	c := Completion()

	for _, name := range []string{"calc", "report", "chart", "email", "interactive", "topic"} {
		require.Contains(t, c.Sub, name)
	}
	assert.Contains(t, c.Sub["calc"].Flags, "l")
	assert.Contains(t, c.Sub["calc"].Flags, "json")
	assert.Contains(t, c.Sub["calc"].Flags, "q")
	assert.Contains(t, c.Sub["report"].Flags, "f")
	assert.Contains(t, c.Flags, "config")
	assert.NotNil(t, c.Sub["topic"].Args)
}

func TestIsCommand(t *testing.T) {
	assert.True(t, IsCommand("calc"))
	assert.True(t, IsCommand("topic"))
	assert.False(t, IsCommand("hello"))
}

func TestValidators(t *testing.T) {
	assert.NoError(t, validateQuantity("10"))
	assert.NoError(t, validateQuantity(" 0 "))
	assert.Error(t, validateQuantity("1.5"))
	assert.Error(t, validateQuantity("ten"))
	assert.NoError(t, validatePrice("0.01"))
	assert.Error(t, validatePrice("1,000"))
}
