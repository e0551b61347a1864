// Package person provides the people known to the rental system:
// customers who book cars and employees who operate the fleet.
//
// Customer and Employee are independent record types that share the
// same contact-detail validation (names, email, optional phone); there
// is no common base type.
package person
