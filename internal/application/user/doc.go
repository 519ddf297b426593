// Package user holds the user use cases: factories that validate untrusted
// input and the CreateUser, FindByID, ListAll, UpdateUser and DeleteUser
// operations that sequence gateway calls around the User aggregate.
//
// Every operation returns an either.Either whose Left side is an
// *apperror.Error. Unexpected gateway or hashing faults never escape as Go
// errors; they are reported as InternalServerError with the fault attached
// as the cause.
package user
