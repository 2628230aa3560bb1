/*
go-layoutproc provides post processing routines for document layout analysis
results.  It takes the labeled bounding box regions produced by a layout
detection model run over document page images and filters them down to a
clean non redundant set, along with supporting helpers for packing text
chunks to a character budget and extracting structure from model responses.

The core routine is the region Deduplicator which removes overlapping and
nested detection regions using an IoU (Intersection over Union) threshold
and a containment test.

See example code and usage in the example subdirectory.
*/
package layoutproc
