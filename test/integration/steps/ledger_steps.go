package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

func registerLedgerSteps(ctx *godog.ScenarioContext, test *testContext) {
	// Owner setup steps
	ctx.Given(`^I am registered as "([^"]*)"$`, test.iAmRegisteredAs)

	// Ledger setup steps
	ctx.Given(`^an account "([^"]*)" with starting balance "([^"]*)"$`, test.anAccountWithStartingBalance)
	ctx.Given(`^an? (income|expense) category "([^"]*)"$`, test.aCategory)
	ctx.Given(`^an? (income|expense) category "([^"]*)" under "([^"]*)"$`, test.aCategoryUnder)
	ctx.Given(`^an? (income|expense) of "([^"]*)" on account "([^"]*)" in category "([^"]*)"$`, test.aTransaction)
	ctx.Given(`^a (daily|weekly|monthly) rule "([^"]*)" of "([^"]*)" on account "([^"]*)" in category "([^"]*)" starting "([^"]*)"$`, test.aRule)
	ctx.Given(`^a (daily|weekly|monthly) rule "([^"]*)" of "([^"]*)" on account "([^"]*)" in category "([^"]*)" from "([^"]*)" until "([^"]*)"$`, test.aRuleUntil)
	ctx.Given(`^another scheduler holds the lease on rule "([^"]*)"$`, test.anotherSchedulerHoldsTheLeaseOnRule)

	// Scheduler steps
	ctx.When(`^the recurring rule batch runs$`, test.theRecurringRuleBatchRuns)
	ctx.Then(`^the batch should report (\d+) executed, (\d+) exhausted and (\d+) skipped$`, test.theBatchShouldReport)
	ctx.Then(`^the rule "([^"]*)" should next run on "([^"]*)"$`, test.theRuleShouldNextRunOn)
	ctx.Then(`^the rule "([^"]*)" should be inactive$`, test.theRuleShouldBeInactive)

	// Balance steps
	ctx.Then(`^the balance of account "([^"]*)" should be "([^"]*)"$`, test.theBalanceOfAccountShouldBe)
	ctx.Then(`^the response field "([^"]*)" should equal amount "([^"]*)"$`, test.theResponseFieldShouldEqualAmount)
}

func mustTempDir() string {
	dir, err := os.MkdirTemp("", "bookkeeping-features-")
	if err != nil {
		panic(err)
	}
	return dir
}

func (t *testContext) iAmRegisteredAs(email string) error {
	body, _ := json.Marshal(map[string]string{
		"email":    email,
		"name":     "Ledger Owner",
		"password": "s3cretpass",
	})
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/register", body); err != nil {
		return err
	}
	if err := t.theResponseStatusShouldBe(http.StatusCreated); err != nil {
		return err
	}

	token, err := t.responseField("data.access_token")
	if err != nil {
		return err
	}
	t.accessToken = fmt.Sprintf("%v", token)
	return nil
}

// create posts payload to path and returns data.id.
func (t *testContext) create(path string, payload map[string]any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	if err := t.executeRequest(http.MethodPost, path, body); err != nil {
		return "", err
	}
	if err := t.theResponseStatusShouldBe(http.StatusCreated); err != nil {
		return "", err
	}

	id, err := t.responseField("data.id")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", id), nil
}

func (t *testContext) anAccountWithStartingBalance(name, startingBalance string) error {
	id, err := t.create("/api/v1/accounts", map[string]any{
		"name":             name,
		"type":             "bank",
		"starting_balance": startingBalance,
	})
	if err != nil {
		return err
	}
	t.accounts[name] = id
	return nil
}

func (t *testContext) aCategory(categoryType, name string) error {
	id, err := t.create("/api/v1/categories", map[string]any{
		"name": name,
		"type": categoryType,
	})
	if err != nil {
		return err
	}
	t.categories[name] = id
	return nil
}

func (t *testContext) aCategoryUnder(categoryType, name, parent string) error {
	parentID, ok := t.categories[parent]
	if !ok {
		return fmt.Errorf("unknown category %q", parent)
	}

	id, err := t.create("/api/v1/categories", map[string]any{
		"name":      name,
		"type":      categoryType,
		"parent_id": parentID,
	})
	if err != nil {
		return err
	}
	t.categories[name] = id
	return nil
}

func (t *testContext) aTransaction(transactionType, amount, account, category string) error {
	_, err := t.create("/api/v1/transactions", map[string]any{
		"account_id":  t.accounts[account],
		"category_id": t.categories[category],
		"type":        transactionType,
		"amount":      amount,
	})
	return err
}

func (t *testContext) aRule(frequency, name, amount, account, category, start string) error {
	return t.createRule(frequency, name, amount, account, category, start, "")
}

func (t *testContext) aRuleUntil(frequency, name, amount, account, category, start, end string) error {
	return t.createRule(frequency, name, amount, account, category, start, end)
}

func (t *testContext) createRule(frequency, name, amount, account, category, start, end string) error {
	payload := map[string]any{
		"account_id":  t.accounts[account],
		"category_id": t.categories[category],
		"type":        "expense",
		"amount":      amount,
		"frequency":   frequency,
		"start_date":  start,
		"note":        name,
	}
	if end != "" {
		payload["end_date"] = end
	}

	id, err := t.create("/api/v1/recurring-rules", payload)
	if err != nil {
		return err
	}
	t.rules[name] = id
	return nil
}

func (t *testContext) anotherSchedulerHoldsTheLeaseOnRule(name string) error {
	id, ok := t.rules[name]
	if !ok {
		return fmt.Errorf("unknown rule %q", name)
	}
	return t.redis.HoldLease("bookkeeping:rule-lease:"+id, time.Minute)
}

func (t *testContext) theRecurringRuleBatchRuns() error {
	summary, err := t.injector.RunDueRules.Execute(context.Background())
	if err != nil {
		return err
	}
	t.summary = summary
	return nil
}

func (t *testContext) theBatchShouldReport(executed, exhausted, skipped int) error {
	if t.summary == nil {
		return fmt.Errorf("the batch has not run")
	}
	if t.summary.Executed != executed || t.summary.Exhausted != exhausted || t.summary.Skipped != skipped {
		return fmt.Errorf("expected %d executed, %d exhausted, %d skipped, got %+v", executed, exhausted, skipped, *t.summary)
	}
	if t.summary.Failed != 0 {
		return fmt.Errorf("expected no failed rules, got %d", t.summary.Failed)
	}
	return nil
}

func (t *testContext) fetchRule(name string) error {
	id, ok := t.rules[name]
	if !ok {
		return fmt.Errorf("unknown rule %q", name)
	}
	if err := t.executeRequest(http.MethodGet, "/api/v1/recurring-rules/"+id, nil); err != nil {
		return err
	}
	return t.theResponseStatusShouldBe(http.StatusOK)
}

func (t *testContext) theRuleShouldNextRunOn(name, date string) error {
	if err := t.fetchRule(name); err != nil {
		return err
	}
	return t.theResponseFieldShouldBe("data.next_run_date", date)
}

func (t *testContext) theRuleShouldBeInactive(name string) error {
	if err := t.fetchRule(name); err != nil {
		return err
	}
	return t.theResponseFieldShouldBe("data.is_active", "false")
}

func (t *testContext) theBalanceOfAccountShouldBe(account, expected string) error {
	id, ok := t.accounts[account]
	if !ok {
		return fmt.Errorf("unknown account %q", account)
	}
	if err := t.executeRequest(http.MethodGet, "/api/v1/accounts/"+id+"/balance", nil); err != nil {
		return err
	}
	if err := t.theResponseStatusShouldBe(http.StatusOK); err != nil {
		return err
	}
	return t.theResponseFieldShouldEqualAmount("data.current_balance", expected)
}

func (t *testContext) theResponseFieldShouldEqualAmount(field, expected string) error {
	value, err := t.responseField(field)
	if err != nil {
		return err
	}

	actual, err := decimal.NewFromString(fmt.Sprintf("%v", value))
	if err != nil {
		return fmt.Errorf("field '%s' is not an amount: %w", field, err)
	}
	want, err := decimal.NewFromString(expected)
	if err != nil {
		return err
	}
	if !actual.Equal(want) {
		return fmt.Errorf("field '%s' expected %s, got %s", field, want, actual)
	}
	return nil
}
