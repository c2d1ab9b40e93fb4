// Package blueprint loads declarative YAML/JSON descriptions of a
// replicating surface and turns them into the seed container the
// replication engine captures. A blueprint names the fields of one record;
// building it produces the single literal instance a live container is
// expected to hold before setup.
package blueprint
