// Package validator checks user input held in strings: integers and decimals,
// character classes and lengths, dates written in a pattern, e-mail
// addresses, phone numbers, URLs, postal codes, UUIDs and credit card numbers
// (Luhn checksum).
//
// Every predicate is a plain function that never panics. Blank or malformed
// input yields false. The integer comparators are the exception: they return
// (bool, error) so that malformed input is reported instead of being silently
// treated as a failed comparison.
//
//	ok := validator.IsValidEmail("bruce.wayne@telecomnancy.eu")
//
//	gt, err := validator.IsIntegerGreaterThan("12", 11) // true, nil
//	_, err = validator.IsIntegerGreaterThan("12a", 11)  // errors.Is(err, validator.ErrNotInteger)
//
// # Rules
//
// For form handling the predicates are also available as Rule values that
// carry a field name, a message and a translation key. Apply evaluates them
// and aggregates the failures into ValidationErrors:
//
//	err := validator.Apply(
//	    validator.Required("email", form.Email),
//	    validator.Email("email", form.Email),
//	    validator.Date("birth_date", form.BirthDate, "dd/MM/yyyy"),
//	    validator.CreditCard("card", form.Card),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        log.Println(field, verrs.Get(field))
//	    }
//	}
//
// ValidationErrors matches ErrValidationFailed with errors.Is.
//
// Date patterns use the dd/MM/yyyy language of package datefmt.
package validator
