package scaffold

// libSource is the template library module: one self-verifying unit test
// stub, so a freshly scaffolded library builds and passes its tests.
const libSource = `#[cfg(test)]
mod tests {
    #[test]
    fn it_works() {
        assert_eq!(2 + 2, 4);
    }
}
`

// binSource is the template executable entry point.
const binSource = `fn main() {
    println!("Hello, world!");
}
`

// ignoreCommon lists the generated build-output paths every project ignores.
const ignoreCommon = "target/\n**/*.rs.bk\n"

// ignoreLockfile is added for libraries only; binaries commit their lockfile.
const ignoreLockfile = "Cargo.lock\n"

// ignoreContents returns the .gitignore payload for the given kind.
func ignoreContents(kind Kind) string {
	if kind == Library {
		return ignoreCommon + ignoreLockfile
	}
	return ignoreCommon
}
