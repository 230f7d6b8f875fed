/*Package interval implements genomic intervals and overlap queries over
  them: a strand-aware 1-based closed Interval value, a balanced
  interval tree with subtree max-end augmentation, and an OverlapDetector
  that indexes arbitrary payloads under one tree per sequence name.
  (Note that overlapping entries are tracked separately, not merged; use
  an interval-union structure when merging is the desired behavior.)
*/
package interval
