// Package mongo reads document constraints from MongoDB collection validators.
//
// SchemaProvider implements schema.Provider for collections created with a
// $jsonSchema validator. Each top-level property becomes one column:
//
//   - maxLength sets the column length;
//   - properties missing from "required", or allowing the "null" bsonType,
//     are nullable;
//   - "int" and "long" carry the precision of 32-bit and 64-bit integers.
//     Other numeric types report no scale, so no decimal rule is derived.
//
// Document entities usually name fields through bson tags, so pair the
// provider with FieldName:
//
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	factory := validation.New(
//		validation.WithSchemaProvider(mongo.NewSchemaProvider(db)),
//		validation.WithColumnNamer(mongo.FieldName),
//	)
//
// New and NewWithDatabase connect with retries; Healthcheck returns a ping
// closure for readiness probes.
package mongo
