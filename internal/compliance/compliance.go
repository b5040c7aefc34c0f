// Package compliance classifies a property's tourist development tax
// standing from its registration flag and payment history.
package compliance

// Scenario is a non-compliance classification. The zero value means the
// property is compliant and maps to a NULL compliance_scenario column.
type Scenario int

const (
	// ScenarioCompliant means the property is registered and has paid
	// the expected amounts.
	ScenarioCompliant Scenario = 0
	// ScenarioUnregisteredNoPayment: not registered, no payments recorded.
	ScenarioUnregisteredNoPayment Scenario = 1
	// ScenarioUnregisteredPaying: payments recorded against an
	// unregistered property.
	ScenarioUnregisteredPaying Scenario = 2
	// ScenarioRegisteredNoPayment: registered but no payments recorded.
	ScenarioRegisteredNoPayment Scenario = 3
	// ScenarioRegisteredWrongAmount: registered and paying, but amounts
	// do not match what was expected.
	ScenarioRegisteredWrongAmount Scenario = 4
)

// Classify is a total function over the three inputs. paymentCorrect is
// only consulted when the property is registered and has payments.
func Classify(isRegistered, hasPayments, paymentCorrect bool) Scenario {
	switch {
	case !isRegistered && !hasPayments:
		return ScenarioUnregisteredNoPayment
	case !isRegistered:
		return ScenarioUnregisteredPaying
	case !hasPayments:
		return ScenarioRegisteredNoPayment
	case !paymentCorrect:
		return ScenarioRegisteredWrongAmount
	default:
		return ScenarioCompliant
	}
}

// Ptr maps a scenario to its nullable column representation: nil when
// compliant, otherwise a pointer to the scenario number.
func (s Scenario) Ptr() *int {
	if s == ScenarioCompliant {
		return nil
	}
	n := int(s)
	return &n
}

func (s Scenario) String() string {
	switch s {
	case ScenarioCompliant:
		return "compliant"
	case ScenarioUnregisteredNoPayment:
		return "unregistered, no payment"
	case ScenarioUnregisteredPaying:
		return "unregistered, but paying"
	case ScenarioRegisteredNoPayment:
		return "registered, no payment"
	case ScenarioRegisteredWrongAmount:
		return "registered, wrong amount paid"
	default:
		return "unknown"
	}
}
